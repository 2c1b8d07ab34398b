package formatters_test

import (
	"testing"
	"time"

	"github.com/itsatony/go-formatters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers_Leaves(t *testing.T) {
	assert.Equal(t, "1.5mb", formatters.FormatBytes(1.5*1024*1024))
	assert.Equal(t, "1,234,567", formatters.FormatNumber(1234567))
	assert.Equal(t, "12.5%", formatters.FormatPercentage(12.5, formatters.PercentOptions{DP: 1}))
	assert.Equal(t, "50%", formatters.FormatPercentage(0.5, formatters.PercentOptions{Float: true}))

	assert.Equal(t, "a, b and c", formatters.ListAnd("a", "b", "c"))
	assert.Equal(t, "a or b", formatters.ListOr("a", "b"))
	assert.Equal(t, "a", formatters.ListAnd("a"))

	result, err := formatters.FormatList([]string{"a", "b", "c", "d"}, formatters.ListOptions{Cutoff: 2})
	require.NoError(t, err)
	assert.Equal(t, "a, b and 2 others", result)

	result, err = formatters.FormatList([]string{"a", "b"}, formatters.ListOptions{Or: true, Quote: "'"})
	require.NoError(t, err)
	assert.Equal(t, "'a' or 'b'", result)
}

func TestHelpers_RelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	opts := formatters.RelativeTimeOptions{MicroTime: true}

	assert.Equal(t, "5m", formatters.RelativeTimeBetween(now.Add(-5*time.Minute), now, opts))
	assert.Equal(t, "120ms", formatters.RelativeTimeBetween(now.Add(-120*time.Millisecond), now, opts))
	assert.Equal(t, "0s", formatters.RelativeTimeBetween(now.Add(-120*time.Millisecond), now, formatters.RelativeTimeOptions{}))
	assert.Equal(t, "0s", formatters.RelativeTime(time.Time{}))
	assert.Equal(t, "2h", formatters.RelativeTime(time.Now().Add(-2*time.Hour-time.Second)))
}

func TestHelpers_ByUnit(t *testing.T) {
	result, err := formatters.ByUnit(2048, formatters.UnitBytes)
	require.NoError(t, err)
	assert.Equal(t, "2kb", result)

	result, err = formatters.ByUnit(2048, formatters.UnitNumber)
	require.NoError(t, err)
	assert.Equal(t, "2,048", result)

	_, err = formatters.ByUnit(1, "furlongs")
	require.Error(t, err)
	assert.True(t, formatters.IsKind(err, formatters.KindUnknownUnit))

	t.Run("engine clock", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		engine := formatters.MustNew(formatters.WithClock(func() time.Time { return now }))
		locale, ok := engine.Leaves().(*formatters.Locale)
		require.True(t, ok)

		result, err := locale.ByUnit(float64(now.Add(-3*24*time.Hour).UnixMilli()), formatters.UnitTimeMs)
		require.NoError(t, err)
		assert.Equal(t, "3d", result)
	})
}

func TestNewLocale(t *testing.T) {
	locale, err := formatters.NewLocale("fr", false)
	require.NoError(t, err)
	assert.Equal(t, "fr", locale.Tag().String())
	assert.False(t, locale.Color())

	result, err := locale.List([]string{"a", "b"}, formatters.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a et b", result)

	_, err = formatters.NewLocale("not a locale!", true)
	assert.True(t, formatters.IsKind(err, formatters.KindInvalidLocale))
}

func TestHelpers_Pluralize(t *testing.T) {
	tests := []struct {
		word     string
		value    float64
		expected string
	}{
		{"item", 1, "item"},
		{"item", 2, "items"},
		{"box", 0, "boxes"},
		{"item[s]", 3, "items"},
		{"pe[rson|ople]", 1, "person"},
		{"pe[rson|ople]", 4, "people"},
		{"child|children", 2, "children"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			result, err := formatters.Pluralize(tt.word, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	result, err := formatters.PluralizeN(3, "bus")
	require.NoError(t, err)
	assert.Equal(t, "3 buses", result)

	result, err = formatters.PluralizeSpec(formatters.NewPluralSpec("ox", "oxen", 2, true))
	require.NoError(t, err)
	assert.Equal(t, "2 oxen", result)

	result, err = formatters.PluralizeSpec(formatters.PluralByWord("leaf"))
	require.NoError(t, err)
	assert.Equal(t, "leaves", result)
}
