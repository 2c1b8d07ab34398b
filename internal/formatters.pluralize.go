package internal

import (
	"regexp"
	"strconv"
	"strings"
)

// PluralSpec is the canonical pluralization request. Build one with the
// PluralBy* constructors or NewPluralSpec.
type PluralSpec struct {
	Singular string
	Plural   string  // explicit plural, guessed from the table when empty
	Value    float64 // singular form is used only when Value == 1
	Prefix   bool    // prepend the value and a space
}

// PluralByValue builds a spec from a value only.
func PluralByValue(value float64) PluralSpec {
	return PluralSpec{Value: value}
}

// PluralByWord builds a spec from a word (or shorthand) with the default
// value, which always selects the plural.
func PluralByWord(word string) PluralSpec {
	return PluralSpec{Singular: word, Value: DefaultPluralValue}
}

// PluralByValueAndWord builds a spec from a value and a word.
func PluralByValueAndWord(value float64, word string) PluralSpec {
	return PluralSpec{Singular: word, Value: value}
}

// NewPluralSpec builds a spec from every field.
func NewPluralSpec(singular, plural string, value float64, prefix bool) PluralSpec {
	return PluralSpec{Singular: singular, Plural: plural, Value: value, Prefix: prefix}
}

// WithPlural returns a copy with an explicit plural.
func (s PluralSpec) WithPlural(plural string) PluralSpec {
	s.Plural = plural
	return s
}

// WithPrefix returns a copy that prepends the value.
func (s PluralSpec) WithPrefix(prefix bool) PluralSpec {
	s.Prefix = prefix
	return s
}

// WithWord returns a copy with a different singular or shorthand.
func (s PluralSpec) WithWord(word string) PluralSpec {
	s.Singular = word
	return s
}

// PluralRule rewrites the span of a singular matched by Pattern.
// Transform receives the whole word and the matched text and returns the
// replacement for the matched text.
type PluralRule struct {
	Pattern   *regexp.Regexp
	Transform func(word, match string) string
}

// PluralTable is an ordered rule list; the first matching pattern wins.
type PluralTable []PluralRule

var (
	pluralBraces = regexp.MustCompile(`^(?P<prefix>.*?)\[(?P<modifier>.+?)\](?P<suffix>.*)$`)
	pluralPipe   = regexp.MustCompile(`^(?P<singular>.*)\|(?P<plural>.*)$`)
	modifierPipe = regexp.MustCompile(`\s*\|\s*`)
)

func replaceWith(s string) func(string, string) string {
	return func(string, string) string { return s }
}

func unchanged(_, match string) string {
	return match
}

func dropAndAppend(drop int, suffix string) func(string, string) string {
	return func(_, match string) string {
		if len(match) < drop {
			return suffix
		}
		return match[:len(match)-drop] + suffix
	}
}

// invariantWith builds a pattern matching any of the words as whole words.
func invariantWith(words []string, suffix string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)` + suffix + `\b`)
}

// singular nouns that end in -s, listed without the trailing s
var pluralOnlyNouns = []string{
	// tools
	"goggle", "scissor", "plier", "tong", "tweezer",
	// clothes
	"trouser", "pant", "pantie", "clothe",
	// games
	"billiard", "bowl", "card", "dart", "skittle", "draught",
	// illnesses
	"diabete", "measle", "mump", "rabie", "ricket", "shingle",
	// misc
	"kudo", "premise", "shamble", "glasse", "spectacle", "jitter",
	"alm", "fece", "bowel", "sud", "entrail", "electronic", "outskirt", "odd", "tropic",
	"riche", "surrounding", "thank", "heroic", "remain", "amend",
}

var invariantAnimals = []string{"bison", "cod", "deer", "fowl", "halibut", "moose", "sheep"}

var uncountables = []string{
	"tea", "sugar", "water", "air", "rice", "knowledge", "beauty", "anger",
	"fear", "love", "money", "research", "safety", "evidence",
}

// DefaultPluralTable is the English guessing table. The order is
// load-bearing: earlier entries shadow later ones.
var DefaultPluralTable = PluralTable{
	// consonant + y, and -quy (soliloquy)
	{regexp.MustCompile(`(?i)[^aeiou]y$|quy$`), dropAndAppend(1, "ies")},

	{regexp.MustCompile(`(?i)x$|ch$|s$`), func(_, m string) string { return m + "es" }},

	// latin/greek forms
	{regexp.MustCompile(`(?i)nucleus|syllabus|focus|fungus|cactus`), dropAndAppend(2, "i")},
	{regexp.MustCompile(`(?i)thesis|crisis`), dropAndAppend(2, "es")},
	{regexp.MustCompile(`(?i)appendix|index`), dropAndAppend(2, "ices")},

	// stereo -> stereos, hero -> heroes
	{regexp.MustCompile(`(?i)[aeiouy]o$`), func(_, m string) string { return m + "s" }},
	{regexp.MustCompile(`(?i)[^aeiouy]o$`), func(_, m string) string { return m + "es" }},

	// f/fe -> ves, except dwarf and roof
	{regexp.MustCompile(`(?i)fe?$`), func(w, m string) string {
		switch strings.ToLower(w) {
		case "dwarf", "roof":
			return m + "s"
		}
		return "ves"
	}},

	// irregulars
	{regexp.MustCompile(`^criterion$`), replaceWith("criteria")},
	{regexp.MustCompile(`^bacterium$`), replaceWith("bacteria")},
	{regexp.MustCompile(`^memo$`), replaceWith("memos")},
	{regexp.MustCompile(`^cello$`), replaceWith("cellos")},
	{regexp.MustCompile(`^die$`), replaceWith("dice")},
	{regexp.MustCompile(`^goose$`), replaceWith("geese")},
	{regexp.MustCompile(`^mouse$`), replaceWith("mice")},
	{regexp.MustCompile(`^person$`), replaceWith("people")},
	{regexp.MustCompile(`^chilli$`), replaceWith("chillies")},

	{regexp.MustCompile(`(?i)^(?:wo)?man$`), func(_, m string) string { return strings.Replace(m, "a", "e", 1) }},

	{invariantWith(invariantAnimals, ""), unchanged},
	{invariantWith(pluralOnlyNouns, "s"), unchanged},

	// mathematics, statistics, linguistics
	{regexp.MustCompile(`(?i)ics$`), unchanged},

	{invariantWith(uncountables, ""), unchanged},

	{regexp.MustCompile(`$`), replaceWith("s")},
}

// Guess applies the first matching rule to singular.
func (t PluralTable) Guess(singular string) (string, error) {
	for _, rule := range t {
		loc := rule.Pattern.FindStringIndex(singular)
		if loc == nil {
			continue
		}
		match := singular[loc[0]:loc[1]]
		return singular[:loc[0]] + rule.Transform(singular, match) + singular[loc[1]:], nil
	}
	return StringValueEmpty, NewNoPluralRuleError(singular)
}

// Pluralize resolves spec with the default table.
func Pluralize(spec PluralSpec) (string, error) {
	return DefaultPluralTable.Pluralize(spec)
}

// Pluralize resolves the shorthand forms of spec.Singular, guesses a missing
// plural from the table, and selects the form for spec.Value.
func (t PluralTable) Pluralize(spec PluralSpec) (string, error) {
	singular, plural, ok := SplitPluralForms(spec.Singular)
	if !ok {
		plural = spec.Plural
	}

	if plural == StringValueEmpty {
		guessed, err := t.Guess(singular)
		if err != nil {
			return StringValueEmpty, err
		}
		plural = guessed
	}

	var sb strings.Builder
	if spec.Prefix {
		sb.WriteString(FormatPlainNumber(spec.Value))
		sb.WriteString(StringSpace)
	}
	if spec.Value == 1 {
		sb.WriteString(singular)
	} else {
		sb.WriteString(plural)
	}
	return sb.String(), nil
}

// SplitPluralForms decodes the shorthands
//
//	pe[rson|ople]  -> person, people
//	item[s]        -> item, items
//	person|people  -> person, people
//
// ok is false, and word is returned unchanged, when no shorthand is present.
// An empty plural part ("item|") still counts as a shorthand.
func SplitPluralForms(word string) (singular, plural string, ok bool) {
	if m := pluralBraces.FindStringSubmatch(word); m != nil {
		prefix, modifier, suffix := m[1], m[2], m[3]
		if strings.Contains(modifier, "|") {
			parts := modifierPipe.Split(modifier, -1)
			return prefix + parts[0] + suffix, prefix + parts[1] + suffix, true
		}
		return prefix + suffix, prefix + modifier + suffix, true
	}

	if m := pluralPipe.FindStringSubmatch(word); m != nil {
		return m[1], m[2], true
	}

	return word, StringValueEmpty, false
}

// FormatPlainNumber renders v in its shortest decimal form without grouping.
func FormatPlainNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
