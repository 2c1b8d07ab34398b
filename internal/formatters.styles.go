package internal

import (
	"sort"
	"strconv"
	"strings"
)

// ANSI control sequence framing
const (
	ansiEscape = "\x1b["
	ansiSuffix = "m"
	ansiReset  = 0
)

// styleCodes maps style names to their SGR opening code. The table matches
// the ansi-styles set: modifiers, foreground and background colors and
// their bright variants.
var styleCodes = map[string]int{
	// modifiers
	"reset":         0,
	"bold":          1,
	"dim":           2,
	"italic":        3,
	"underline":     4,
	"overline":      53,
	"inverse":       7,
	"hidden":        8,
	"strikethrough": 9,

	// foreground
	"black":         30,
	"red":           31,
	"green":         32,
	"yellow":        33,
	"blue":          34,
	"magenta":       35,
	"cyan":          36,
	"white":         37,
	"blackBright":   90,
	"gray":          90,
	"grey":          90,
	"redBright":     91,
	"greenBright":   92,
	"yellowBright":  93,
	"blueBright":    94,
	"magentaBright": 95,
	"cyanBright":    96,
	"whiteBright":   97,

	// background
	"bgBlack":         40,
	"bgRed":           41,
	"bgGreen":         42,
	"bgYellow":        43,
	"bgBlue":          44,
	"bgMagenta":       45,
	"bgCyan":          46,
	"bgWhite":         47,
	"bgBlackBright":   100,
	"bgGray":          100,
	"bgGrey":          100,
	"bgRedBright":     101,
	"bgGreenBright":   102,
	"bgYellowBright":  103,
	"bgBlueBright":    104,
	"bgMagentaBright": 105,
	"bgCyanBright":    106,
	"bgWhiteBright":   107,
}

// styleIndex is styleCodes keyed by lower-cased name.
var styleIndex = func() map[string]string {
	idx := make(map[string]string, len(styleCodes))
	for name := range styleCodes {
		idx[strings.ToLower(name)] = name
	}
	return idx
}()

// StyleNames returns every known style name in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styleCodes))
	for name := range styleCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeStyleName maps a requested name onto the style table, stripping
// an "fg" prefix ("fgBlue" is "blue"). Lookup is case-insensitive.
func NormalizeStyleName(name string) (string, bool) {
	if canonical, ok := styleIndex[strings.ToLower(name)]; ok {
		return canonical, true
	}
	if len(name) > len(StylePrefixForeground) && strings.EqualFold(name[:len(StylePrefixForeground)], StylePrefixForeground) {
		if canonical, ok := styleIndex[strings.ToLower(name[len(StylePrefixForeground):])]; ok {
			return canonical, true
		}
	}
	return StringValueEmpty, false
}

// StyleCode returns the opening control sequence for one style name.
func StyleCode(name string) (string, error) {
	canonical, ok := NormalizeStyleName(name)
	if !ok {
		return StringValueEmpty, NewUnknownStyleError(name, FindSimilarStrings(name, StyleNames(), MaxSuggestions))
	}
	return sgr(styleCodes[canonical]), nil
}

// StyleOpen concatenates the opening sequences for every name, in order.
func StyleOpen(names []string) (string, error) {
	var sb strings.Builder
	for _, name := range names {
		code, err := StyleCode(name)
		if err != nil {
			return StringValueEmpty, err
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// StyleReset returns the reset control sequence.
func StyleReset() string {
	return sgr(ansiReset)
}

func sgr(code int) string {
	return ansiEscape + strconv.Itoa(code) + ansiSuffix
}
