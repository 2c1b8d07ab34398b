package formatters

import "github.com/itsatony/go-formatters/internal"

// Pluralize picks the form of word for value. word may be a plain singular
// ("item"), a braced shorthand ("item[s]", "pe[rson|ople]") or a piped pair
// ("person|people").
func Pluralize(word string, value float64) (string, error) {
	return PluralizeSpec(internal.PluralByValueAndWord(value, word))
}

// PluralizeN is Pluralize with the value prepended ("3 items").
func PluralizeN(value float64, word string) (string, error) {
	return PluralizeSpec(internal.PluralByValueAndWord(value, word).WithPrefix(true))
}

// PluralizeSpec resolves a full plural spec with the default table.
func PluralizeSpec(spec PluralSpec) (string, error) {
	s, err := internal.Pluralize(spec)
	return s, wrapError(err)
}

// PluralByValue builds a spec from a value only.
func PluralByValue(value float64) PluralSpec {
	return internal.PluralByValue(value)
}

// PluralByWord builds a spec that always selects the plural.
func PluralByWord(word string) PluralSpec {
	return internal.PluralByWord(word)
}

// PluralByValueAndWord builds a spec from a value and a word.
func PluralByValueAndWord(value float64, word string) PluralSpec {
	return internal.PluralByValueAndWord(value, word)
}

// NewPluralSpec builds a spec from every field.
func NewPluralSpec(singular, plural string, value float64, prefix bool) PluralSpec {
	return internal.NewPluralSpec(singular, plural, value, prefix)
}
