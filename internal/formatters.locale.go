package internal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number formatting limits
const (
	NumberMaxFractionDigits = 3
	bytesBase               = 1024
	bytesDecimals           = 10 // one decimal place
)

var byteUnits = []string{"b", "kb", "mb", "gb", "tb", "pb", "eb"}

// listWords holds the conjunction and disjunction words of a language.
type listWords struct {
	separator string
	and       string
	or        string
}

var listWordsByLanguage = map[string]listWords{
	"en": {separator: ", ", and: " and ", or: " or "},
	"de": {separator: ", ", and: " und ", or: " oder "},
	"fr": {separator: ", ", and: " et ", or: " ou "},
	"es": {separator: ", ", and: " y ", or: " o "},
	"it": {separator: ", ", and: " e ", or: " o "},
	"nl": {separator: ", ", and: " en ", or: " of "},
	"pt": {separator: ", ", and: " e ", or: " ou "},
}

// relative time magnitudes in the compact "mini" style
var miniMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "%ds", DivBy: time.Second},
	{D: time.Hour, Format: "%dm", DivBy: time.Minute},
	{D: humanize.Day, Format: "%dh", DivBy: time.Hour},
	{D: humanize.Week, Format: "%dd", DivBy: humanize.Day},
	{D: humanize.Month, Format: "%dw", DivBy: humanize.Week},
	{D: humanize.Year, Format: "%dmo", DivBy: humanize.Month},
	{D: time.Duration(math.MaxInt64), Format: "%dyr", DivBy: humanize.Year},
}

// Locale implements Leaves for one language. It is immutable and safe for
// concurrent use.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
	words   listWords
	color   bool
	plurals PluralTable
	now     Clock
}

// LocaleOption configures a Locale.
type LocaleOption func(*Locale)

// WithLocaleColor enables or disables terminal control codes. Style names
// are validated either way.
func WithLocaleColor(enabled bool) LocaleOption {
	return func(l *Locale) {
		l.color = enabled
	}
}

// WithLocalePlurals sets the table used for list cutoff suffixes.
func WithLocalePlurals(table PluralTable) LocaleOption {
	return func(l *Locale) {
		if table != nil {
			l.plurals = table
		}
	}
}

// WithLocaleClock sets the clock used for relative times.
func WithLocaleClock(now Clock) LocaleOption {
	return func(l *Locale) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLocale creates a Locale from a BCP 47 tag such as "en", "en-GB" or "de".
func NewLocale(tag string, opts ...LocaleOption) (*Locale, error) {
	if tag == StringValueEmpty {
		tag = DefaultLocale
	}
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return nil, err
	}

	base, _ := parsed.Base()
	words, ok := listWordsByLanguage[base.String()]
	if !ok {
		words = listWordsByLanguage[DefaultLocale]
	}

	l := &Locale{
		tag:     parsed,
		printer: message.NewPrinter(parsed),
		words:   words,
		color:   true,
		plurals: DefaultPluralTable,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// MustNewLocale is NewLocale that panics on an invalid tag.
func MustNewLocale(tag string, opts ...LocaleOption) *Locale {
	l, err := NewLocale(tag, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the locale's language tag.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// Color reports whether control codes are emitted.
func (l *Locale) Color() bool {
	return l.color
}

// Number formats v with the locale's grouping and decimal separators.
func (l *Locale) Number(v float64) string {
	return l.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(NumberMaxFractionDigits)))
}

// Percentage formats v as a percentage. Unless opts.Float is set v is
// already a percentage (12 is 12%).
func (l *Locale) Percentage(v float64, opts PercentOptions) string {
	if !opts.Float {
		v /= 100
	}
	dp := opts.DP
	if dp < 0 {
		dp = 0
	}
	minDigits := 0
	if dp > 0 && opts.Pad {
		minDigits = dp
	}
	return l.printer.Sprint(number.Percent(v,
		number.MaxFractionDigits(dp),
		number.MinFractionDigits(minDigits),
	))
}

// Bytes renders a byte count in base-1024 units with at most one decimal.
func (l *Locale) Bytes(v float64) string {
	if v < 0 {
		return "-" + l.Bytes(-v)
	}
	if v == 0 || math.IsNaN(v) {
		return "0" + byteUnits[0]
	}

	unit := 0
	for v >= bytesBase && unit < len(byteUnits)-1 {
		v /= bytesBase
		unit++
	}
	v = math.Round(v*bytesDecimals) / bytesDecimals
	if v >= bytesBase && unit < len(byteUnits)-1 {
		v /= bytesBase
		unit++
	}
	return humanize.Ftoa(v) + byteUnits[unit]
}

// List joins items with the locale's separator and final conjunction or
// disjunction.
func (l *Locale) List(items []string, opts ListOptions) (string, error) {
	if opts.Cutoff > 0 && len(items) > opts.Cutoff {
		suffix := opts.CutoffPlural
		if suffix == StringValueEmpty {
			suffix = DefaultCutoffPlural
		}
		omitted, err := l.plurals.Pluralize(PluralByValueAndWord(float64(len(items)-opts.Cutoff), suffix).WithPrefix(true))
		if err != nil {
			return StringValueEmpty, err
		}
		items = append(append(make([]string, 0, opts.Cutoff+1), items[:opts.Cutoff]...), omitted)
	}

	if opts.Quote != StringValueEmpty {
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = opts.Quote + item + opts.Quote
		}
		items = quoted
	}

	return l.Join(items, opts.Or), nil
}

// Join joins items with the separator and the final "and" or "or" word.
func (l *Locale) Join(items []string, or bool) string {
	last := l.words.and
	if or {
		last = l.words.or
	}

	switch len(items) {
	case 0:
		return StringValueEmpty
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], l.words.separator) + last + items[len(items)-1]
	}
}

// StyleOpen returns the opening control codes for names.
func (l *Locale) StyleOpen(names []string) (string, error) {
	codes, err := StyleOpen(names)
	if err != nil || !l.color {
		return StringValueEmpty, err
	}
	return codes, nil
}

// StyleReset returns the reset control code.
func (l *Locale) StyleReset() string {
	if !l.color {
		return StringValueEmpty
	}
	return StyleReset()
}

// RelativeTime renders the distance between t and now in the compact style
// (1s, 5m, 2h, 3d, 1w, 2mo, 1yr). Past and future distances look the same.
func (l *Locale) RelativeTime(t, now time.Time, opts RelativeTimeOptions) string {
	if t.IsZero() || t.Equal(now) {
		return "0s"
	}

	diff := now.Sub(t)
	distance := diff
	if distance < 0 {
		distance = -distance
	}

	if opts.MicroTime && distance < time.Second {
		return fmt.Sprintf("%dms", diff.Milliseconds())
	}
	return humanize.CustomRelTime(t, now, StringValueEmpty, StringValueEmpty, miniMagnitudes)
}

// ByUnit formats v according to a unit name: bytes, number, or timeMs
// (a Unix timestamp in milliseconds, rendered relative to the clock).
func (l *Locale) ByUnit(v float64, unit string) (string, error) {
	switch unit {
	case UnitBytes:
		return l.Bytes(v), nil
	case UnitNumber:
		return l.Number(v), nil
	case UnitTimeMs:
		if v == 0 {
			return l.RelativeTime(time.Time{}, l.now(), DefaultRelativeTimeOptions()), nil
		}
		return l.RelativeTime(time.UnixMilli(int64(v)), l.now(), DefaultRelativeTimeOptions()), nil
	default:
		return StringValueEmpty, NewUnknownUnitError(unit)
	}
}
