package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"empty strings", "", "", 0},
		{"empty a", "", "red", 3},
		{"empty b", "red", "", 3},
		{"identical", "blue", "blue", 0},
		{"one char diff", "grey", "gray", 1},
		{"completely different", "abc", "xyz", 3},
		{"insertion", "red", "reds", 1},
		{"deletion", "bold", "bol", 1},
		{"case sensitive", "Red", "red", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestFindSimilarStrings(t *testing.T) {
	t.Run("finds close style names", func(t *testing.T) {
		result := FindSimilarStrings("gren", StyleNames(), MaxSuggestions)

		assert.Contains(t, result, "green")
		assert.LessOrEqual(t, len(result), MaxSuggestions)
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		result := FindSimilarStrings("strikethrough", []string{"xyz", "abc"}, 3)
		assert.Empty(t, result)
	})

	t.Run("empty candidates", func(t *testing.T) {
		assert.Empty(t, FindSimilarStrings("red", nil, 3))
	})

	t.Run("zero maxSuggestions", func(t *testing.T) {
		assert.Empty(t, FindSimilarStrings("red", []string{"red"}, 0))
	})

	t.Run("case insensitive matching", func(t *testing.T) {
		result := FindSimilarStrings("BGRED", []string{"bgRed"}, 3)
		assert.Equal(t, []string{"bgRed"}, result)
	})

	t.Run("sorts by similarity", func(t *testing.T) {
		result := FindSimilarStrings("blue", []string{"blues", "blu", "blue"}, 3)
		if assert.NotEmpty(t, result) {
			assert.Equal(t, "blue", result[0])
		}
	})
}

func TestFormatSuggestions(t *testing.T) {
	tests := []struct {
		name        string
		suggestions []string
		expected    string
	}{
		{"empty", nil, ""},
		{"one suggestion", []string{"red"}, ". Did you mean 'red'?"},
		{"two suggestions", []string{"red", "bgRed"}, ". Did you mean 'red' or 'bgRed'?"},
		{"three suggestions", []string{"red", "bgRed", "redBright"}, ". Did you mean 'red', 'bgRed' or 'redBright'?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSuggestions(tt.suggestions))
		})
	}
}

func TestMin3(t *testing.T) {
	tests := []struct {
		a, b, c  int
		expected int
	}{
		{1, 2, 3, 1},
		{3, 2, 1, 1},
		{2, 1, 3, 1},
		{5, 5, 5, 5},
		{-1, 0, 1, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, min3(tt.a, tt.b, tt.c))
	}
}
