package formatters

import (
	"sync"
	"time"

	"github.com/itsatony/go-formatters/internal"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared English engine used by the package-level
// helpers. Its catalog is shared too.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = MustNew()
	})
	return defaultEngine
}

// defaultLocale returns the leaves of the default engine as a Locale.
func defaultLocale() *Locale {
	return Default().Leaves().(*internal.Locale)
}

// NewLocale creates the default leaf formatters for a BCP 47 tag, for use
// with WithLeaves or directly.
func NewLocale(tag string, color bool) (*Locale, error) {
	locale, err := internal.NewLocale(tag, internal.WithLocaleColor(color))
	if err != nil {
		return nil, NewInvalidLocaleError(tag, err)
	}
	return locale, nil
}

// Format renders markup with the default engine.
func Format(source string) (string, error) {
	return Default().Format(source)
}

// FormatAll renders values with the default engine, joined by a space.
func FormatAll(values ...any) (string, error) {
	return Default().FormatAll(values)
}

// FormatBytes renders a byte count ("1kb", "1.5mb").
func FormatBytes(v float64) string {
	return defaultLocale().Bytes(v)
}

// FormatNumber renders v with English grouping ("1,024").
func FormatNumber(v float64) string {
	return defaultLocale().Number(v)
}

// FormatPercentage renders v as a percentage.
func FormatPercentage(v float64, opts PercentOptions) string {
	return defaultLocale().Percentage(v, opts)
}

// FormatList joins items as an English list.
func FormatList(items []string, opts ListOptions) (string, error) {
	s, err := defaultLocale().List(items, opts)
	return s, wrapError(err)
}

// ListAnd joins items with "and".
func ListAnd(items ...string) string {
	return defaultLocale().Join(items, false)
}

// ListOr joins items with "or".
func ListOr(items ...string) string {
	return defaultLocale().Join(items, true)
}

// RelativeTime renders the distance between t and now ("5m", "2d").
func RelativeTime(t time.Time) string {
	return defaultLocale().RelativeTime(t, time.Now(), internal.DefaultRelativeTimeOptions())
}

// RelativeTimeBetween renders the distance between t and now with options.
func RelativeTimeBetween(t, now time.Time, opts RelativeTimeOptions) string {
	return defaultLocale().RelativeTime(t, now, opts)
}

// ByUnit formats v by unit name: bytes, number or timeMs (a Unix timestamp
// in milliseconds).
func ByUnit(v float64, unit string) (string, error) {
	s, err := defaultLocale().ByUnit(v, unit)
	return s, wrapError(err)
}
