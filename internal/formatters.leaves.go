package internal

import (
	"time"
)

// Leaves are the leaf formatters and style lookups the resolver delegates
// to. They hold no engine logic.
type Leaves interface {
	Bytes(v float64) string
	Number(v float64) string
	Percentage(v float64, opts PercentOptions) string
	List(items []string, opts ListOptions) (string, error)
	StyleOpen(names []string) (string, error)
	StyleReset() string
}

// PercentOptions configures percentage formatting.
type PercentOptions struct {
	DP    int  // maximum decimal places
	Pad   bool // also force DP minimum decimal places
	Float bool // the value is a fraction (0.12 is 12%)
}

// ListOptions configures list formatting.
type ListOptions struct {
	Or           bool   // disjunction ("or"); conjunction otherwise
	And          bool   // explicit conjunction, the default
	Cutoff       int    // show at most Cutoff items, 0 for all
	CutoffPlural string // pluralize() shorthand for the omitted count
	Quote        string // surround each item with this string, empty for none
}

// RelativeTimeOptions configures relative time formatting.
type RelativeTimeOptions struct {
	MicroTime bool // report milliseconds for distances under a second
}

// DefaultRelativeTimeOptions returns the default relative time options.
func DefaultRelativeTimeOptions() RelativeTimeOptions {
	return RelativeTimeOptions{MicroTime: true}
}

// PercentOptionsFromAttrs reads dp, pad and float tag attributes.
func PercentOptionsFromAttrs(attrs Attributes) PercentOptions {
	return PercentOptions{
		DP:    attrs.Int(AttrDP, 0),
		Pad:   attrs.Flag(AttrPad),
		Float: attrs.Flag(AttrFloat),
	}
}

// ListOptionsFromAttrs reads or, and, cutoff, cutoffPlural and quote tag
// attributes. A bare quote flag quotes with double quotes.
func ListOptionsFromAttrs(attrs Attributes) ListOptions {
	opts := ListOptions{
		Or:           attrs.Flag(AttrOr),
		And:          attrs.Flag(AttrAnd),
		Cutoff:       attrs.Int(AttrCutoff, 0),
		CutoffPlural: attrs.String(AttrCutoffPlural, DefaultCutoffPlural),
	}
	if quote, ok := attrs.Get(AttrQuote); ok {
		switch {
		case quote.Flag:
			opts.Quote = DefaultQuote
		case quote.Value != AttrValueFalse:
			opts.Quote = quote.Value
		}
	}
	return opts
}

// Clock returns the current time.
type Clock func() time.Time
