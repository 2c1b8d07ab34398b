package formatters

import "github.com/itsatony/go-formatters/internal"

// Rule is one grammar entry. Custom rules set Name, Priority, a Pattern or
// Match function and an Operate function; Kind stays RuleKindCustom.
type Rule = internal.Rule

// RuleKind identifies the built-in behavior of a rule.
type RuleKind = internal.RuleKind

// Rule kinds
const (
	RuleKindCustom     = internal.RuleKindCustom
	RuleKindBytes      = internal.RuleKindBytes
	RuleKindNumber     = internal.RuleKindNumber
	RuleKindPercentage = internal.RuleKindPercentage
	RuleKindQuantifier = internal.RuleKindQuantifier
	RuleKindList       = internal.RuleKindList
	RuleKindStyle      = internal.RuleKindStyle
	RuleKindPlural     = internal.RuleKindPlural
	RuleKindNumeric    = internal.RuleKindNumeric
	RuleKindText       = internal.RuleKindText
)

// Hooks of a custom rule
type (
	MatchFunc   = internal.MatchFunc
	TidyFunc    = internal.TidyFunc
	OperateFunc = internal.OperateFunc
)

// Token is one parsed unit of markup, as seen by custom rule hooks.
type Token = internal.Token

// ResolveContext is passed to a rule's Operate function.
type ResolveContext = internal.ResolveContext

// SearchOption adjusts a nearest numeric search.
type SearchOption = internal.SearchOption

// NumericMatch is the result of a nearest numeric search.
type NumericMatch = internal.NumericMatch

// Attributes are the parsed key=value and flag attributes of a tag.
type Attributes = internal.Attributes

// Attr is a single attribute value.
type Attr = internal.Attr

// Leaves are the leaf formatters the engine delegates to.
type Leaves = internal.Leaves

// Locale is the default Leaves implementation.
type Locale = internal.Locale

// Leaf formatter options
type (
	PercentOptions      = internal.PercentOptions
	ListOptions         = internal.ListOptions
	RelativeTimeOptions = internal.RelativeTimeOptions
)

// Pluralization types
type (
	PluralSpec  = internal.PluralSpec
	PluralRule  = internal.PluralRule
	PluralTable = internal.PluralTable
)

// DefaultPluralTable is the English guessing table.
var DefaultPluralTable = internal.DefaultPluralTable

// WithDirection overrides the search direction of NearestNumeric.
func WithDirection(direction string) SearchOption {
	return internal.WithDirection(direction)
}

// WithoutLists ignores list blocks as numeric sources.
func WithoutLists() SearchOption {
	return internal.WithoutLists()
}

// DefaultRules returns a fresh copy of the default rule set.
func DefaultRules() []*Rule {
	return internal.DefaultRules()
}

// ParseAttributes parses tag attribute text.
func ParseAttributes(raw string) Attributes {
	return internal.ParseAttributes(raw)
}

// StyleNames returns every known style name.
func StyleNames() []string {
	return internal.StyleNames()
}
