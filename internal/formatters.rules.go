package internal

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// RuleKind identifies the built-in behavior of a rule. Caller supplied rules
// are RuleKindCustom and carry their own hooks.
type RuleKind int

// Rule kinds
const (
	RuleKindCustom RuleKind = iota
	RuleKindBytes
	RuleKindNumber
	RuleKindPercentage
	RuleKindQuantifier
	RuleKindList
	RuleKindStyle
	RuleKindPlural
	RuleKindNumeric
	RuleKindText
)

// String returns the rule kind name.
func (k RuleKind) String() string {
	switch k {
	case RuleKindBytes:
		return RuleNameBytes
	case RuleKindNumber:
		return RuleNameNumber
	case RuleKindPercentage:
		return RuleNamePercentage
	case RuleKindQuantifier:
		return RuleNameQuantifier
	case RuleKindList:
		return RuleNameList
	case RuleKindStyle:
		return RuleNameStyle
	case RuleKindPlural:
		return RuleNamePlural
	case RuleKindNumeric:
		return RuleNameNumeric
	case RuleKindText:
		return RuleNameText
	default:
		return "custom"
	}
}

// MatchFunc tests the head of the remaining input. It returns the captured
// fields and the number of bytes consumed.
type MatchFunc func(remaining string) (fields map[string]string, length int, ok bool)

// TidyFunc computes derived token fields right after a match.
type TidyFunc func(token *Token) error

// OperateFunc computes the final content of a token during resolution.
type OperateFunc func(ctx *ResolveContext) error

// Rule is one grammar entry. Default rules dispatch on Kind; custom rules
// supply Tidy and Operate.
type Rule struct {
	Name     string
	Kind     RuleKind
	Priority int
	Pattern  *regexp.Regexp // must match at the start of the remainder
	Match    MatchFunc      // used when Pattern is nil
	Numeric  bool           // tokens of this rule are numeric-bearing
	Tidy     TidyFunc
	Operate  OperateFunc
}

// match runs the rule against the remainder.
func (r *Rule) match(remaining string) (map[string]string, int, bool) {
	if r.Pattern == nil {
		if r.Match == nil {
			return nil, 0, false
		}
		return r.Match(remaining)
	}

	loc := r.Pattern.FindStringSubmatchIndex(remaining)
	if loc == nil || loc[0] != 0 {
		return nil, 0, false
	}

	fields := make(map[string]string)
	for i, name := range r.Pattern.SubexpNames() {
		if i == 0 || name == StringValueEmpty {
			continue
		}
		if start, end := loc[2*i], loc[2*i+1]; start >= 0 {
			fields[name] = remaining[start:end]
		}
	}
	return fields, loc[1], true
}

// validate checks that a rule can take part in tokenizing.
func (r *Rule) validate() error {
	if r.Name == StringValueEmpty {
		return NewInvalidRuleError(r.Name, ErrMsgRuleNoName, -1)
	}
	if r.Pattern == nil && r.Match == nil {
		return NewInvalidRuleError(r.Name, ErrMsgRuleNoMatcher, -1)
	}
	if r.Kind == RuleKindCustom && r.Operate == nil {
		return NewInvalidRuleError(r.Name, ErrMsgRuleNoOperate, -1)
	}
	return nil
}

// IsNumericBearing reports whether tokens of this rule carry a number.
func (r *Rule) IsNumericBearing() bool {
	switch r.Kind {
	case RuleKindNumeric, RuleKindList:
		return true
	case RuleKindCustom:
		return r.Numeric
	default:
		return false
	}
}

const styleNames = `color|style|bold|dim|italic|underline|overline|inverse|hidden|strikethrough|` +
	`(?:bg|fg)?(?:black|red|green|yellow|blue|magenta|cyan|white|gray|grey|` +
	`blackBright|redBright|greenBright|yellowBright|blueBright|magentaBright|cyanBright|whiteBright)`

// Default rule patterns. Tag names must be followed by whitespace or the
// closing bracket so plural words sharing a prefix are not captured.
var (
	patternBytes      = regexp.MustCompile(`(?i)^(?P<tag>\[bytes(?P<attrs>(?:\s[^\]]*)?)\])`)
	patternNumber     = regexp.MustCompile(`(?i)^(?P<tag>\[n(?:umber)?(?P<attrs>(?:\s[^\]]*)?)\])`)
	patternPercentage = regexp.MustCompile(`(?i)^(?P<tag>\[(?:%|percentage|percent)(?P<attrs>(?:\s[^\]]*)?)\])`)
	patternQuantifier = regexp.MustCompile(`^(?P<tag>\[#(?P<attrs>[^\]]*)\])`)
	patternList       = regexp.MustCompile(`(?i)^\[list(?P<attrs>(?:\s[^\]]*)?)\](?P<content>.*?)\[/list\]`)
	patternStyle      = regexp.MustCompile(`(?i)^\[(?P<isClosing>/)?(?P<mainColor>` + styleNames + `)(?P<subColors>(?:[\s,][^\]]*)?)\]`)
	patternPlural     = regexp.MustCompile(`^\[(?P<pluralRules>.+?)(?:\s+(?P<attrs>.+?))?\]`)
	patternNumeric    = regexp.MustCompile(`^(?P<content>\d[\d.]*|\.\d+)`)
	patternText       = regexp.MustCompile(`^(?P<content>[^\[\d]+)`)

	listSplitter  = regexp.MustCompile(`\s*,\s*`)
	styleSplitter = regexp.MustCompile(`\s+|,`)
	leadingFloat  = regexp.MustCompile(`^(?:\d+\.?\d*|\.\d+)`)
)

// DefaultRules returns a fresh copy of the default rule set in registration
// order.
func DefaultRules() []*Rule {
	return []*Rule{
		{Name: RuleNameBytes, Kind: RuleKindBytes, Priority: PriorityFormatting, Pattern: patternBytes},
		{Name: RuleNameNumber, Kind: RuleKindNumber, Priority: PriorityFormatting, Pattern: patternNumber},
		{Name: RuleNamePercentage, Kind: RuleKindPercentage, Priority: PriorityFormatting, Pattern: patternPercentage},
		{Name: RuleNameQuantifier, Kind: RuleKindQuantifier, Priority: PriorityQuantifier, Pattern: patternQuantifier},
		{Name: RuleNameList, Kind: RuleKindList, Priority: PriorityList, Pattern: patternList},
		{Name: RuleNameStyle, Kind: RuleKindStyle, Priority: PriorityStyle, Pattern: patternStyle},
		{Name: RuleNamePlural, Kind: RuleKindPlural, Priority: PriorityPlural, Pattern: patternPlural},
		{Name: RuleNameNumeric, Kind: RuleKindNumeric, Priority: PriorityNumeric, Pattern: patternNumeric},
		{Name: RuleNameText, Kind: RuleKindText, Priority: PriorityText, Pattern: patternText},
	}
}

// RuleSet is an ordered, validated list of rules.
type RuleSet struct {
	rules []*Rule
}

// NewRuleSet merges extra rules into base. A rule whose name matches an
// existing rule replaces it in place; other rules are appended. The result
// is stably sorted by priority, so ties keep registration order.
func NewRuleSet(base []*Rule, extra []*Rule, logger *zap.Logger) (*RuleSet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	merged := make([]*Rule, 0, len(base)+len(extra))
	index := make(map[string]int, len(base)+len(extra))

	for _, r := range append(append([]*Rule{}, base...), extra...) {
		if r == nil {
			continue
		}
		if err := r.validate(); err != nil {
			return nil, err
		}
		if i, exists := index[r.Name]; exists {
			logger.Debug(LogMsgRuleOverridden, zap.String(LogFieldRule, r.Name))
			merged[i] = r
			continue
		}
		index[r.Name] = len(merged)
		merged = append(merged, r)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Priority < merged[j].Priority
	})

	logger.Debug(LogMsgRuleSetBuilt, zap.Int(LogFieldRules, len(merged)))
	return &RuleSet{rules: merged}, nil
}

// Rules returns the rules in the order they are tried.
func (s *RuleSet) Rules() []*Rule {
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Get returns the rule registered under name.
func (s *RuleSet) Get(name string) (*Rule, bool) {
	for _, r := range s.rules {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// tidy computes the derived fields of a freshly matched token.
func tidy(token *Token, leaves Leaves) error {
	rule := token.Rule
	switch rule.Kind {
	case RuleKindList:
		token.Items = listSplitter.Split(token.Content, -1)
		token.SetNumeric(float64(len(token.Items)))

	case RuleKindStyle:
		content, err := styleContent(token, leaves)
		if err != nil {
			return err
		}
		token.Content = content

	case RuleKindPlural:
		token.Fields[FieldPluralRules] = "[" + token.Fields[FieldPluralRules] + "]"

	case RuleKindNumeric:
		token.SetNumeric(ParseLeadingFloat(token.Content))

	case RuleKindCustom:
		if rule.Tidy != nil {
			if err := rule.Tidy(token); err != nil {
				return err
			}
		}
		if rule.Numeric && !token.HasNumeric {
			token.SetNumeric(ParseLeadingFloat(token.Content))
		}
	}

	if !rule.IsNumericBearing() {
		token.Numeric, token.HasNumeric = 0, false
	}
	return nil
}

// styleContent resolves the control codes of a style tag.
func styleContent(token *Token, leaves Leaves) (string, error) {
	if token.Field(FieldIsClosing) != StringValueEmpty {
		return leaves.StyleReset(), nil
	}

	names := []string{token.Field(FieldMainColor)}
	names = append(names, styleSplitter.Split(token.Field(FieldSubColors), -1)...)

	styles := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == StringValueEmpty || strings.EqualFold(name, StyleKeywordColor) || strings.EqualFold(name, StyleKeywordStyle) {
			continue
		}
		styles = append(styles, name)
	}

	return leaves.StyleOpen(styles)
}

// ParseLeadingFloat parses the longest decimal prefix of s, NaN when none.
func ParseLeadingFloat(s string) float64 {
	m := leadingFloat.FindString(s)
	if m == StringValueEmpty {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
