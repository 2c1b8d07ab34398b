package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter(t *testing.T) *Formatter {
	t.Helper()
	f, err := NewFormatter(FormatterConfig{})
	require.NoError(t, err)
	return f
}

type formatCase struct {
	input    string
	expected string
}

func runFormatCases(t *testing.T, f *Formatter, cases []formatCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := f.Format(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestFormatter_Bytes(t *testing.T) {
	runFormatCases(t, newTestFormatter(t), []formatCase{
		{"10[bytes]", "10b"},
		{"1024[bytes]", "1kb"},
		{"prefix 10 [bytes] suffix", "prefix 10b  suffix"},
		{"prefix 1024 [bytes] suffix", "prefix 1kb  suffix"},
	})
}

func TestFormatter_Number(t *testing.T) {
	runFormatCases(t, newTestFormatter(t), []formatCase{
		{"10[number]", "10"},
		{"1024[number]", "1,024"},
		{"10[n]", "10"},
		{"1024[n]", "1,024"},
		{"10 [n]", "10 "},
		{"1024 [n]", "1,024 "},
		{"prefix 1024 [n] suffix", "prefix 1,024  suffix"},
	})
}

func TestFormatter_Percentage(t *testing.T) {
	runFormatCases(t, newTestFormatter(t), []formatCase{
		{"10[percent]", "10%"},
		{"10.31827319872398172[percent]", "10%"},
		{"10.31827319872398172[percent dp=2]", "10.32%"},
		{"10[percentage]", "10%"},
		{"10.31827319872398172[percentage]", "10%"},
		{"10[%]", "10%"},
		{"10.31827319872398172[% dp=2]", "10.32%"},
		{"prefix 10 [%] suffix", "prefix 10%  suffix"},
		{"prefix 10.31827319872398172 [%] suffix", "prefix 10%  suffix"},
		{"0.5[% float]", "50%"},
	})
}

func TestFormatter_Plurals(t *testing.T) {
	runFormatCases(t, newTestFormatter(t), []formatCase{
		{"10 green bottle[s]", "10 green bottles"},
		{"1 green bottle[s]", "1 green bottle"},
		{"1 [person|people]", "1 person"},
		{"3 [person|people]", "3 people"},
	})
}

func TestFormatter_Lists(t *testing.T) {
	runFormatCases(t, newTestFormatter(t), []formatCase{
		{"[list]foo,bar,baz[/list]", "foo, bar and baz"},
		{"[list or]foo,bar,baz[/list]", "foo, bar or baz"},
		{"[list and quote]foo,bar,baz[/list]", `"foo", "bar" and "baz"`},
		{"prefix [list or]foo,bar,baz[/list] suffix", "prefix foo, bar or baz suffix"},
		{"prefix [list cutoff=3]foo,bar,baz,quz,quuz[/list] suffix", "prefix foo, bar, baz and 2 others suffix"},
		{"prefix [list or cutoff=3]foo,bar,baz,quz,quuz[/list] suffix", "prefix foo, bar, baz or 2 others suffix"},
	})
}

func TestFormatter_ListCounts(t *testing.T) {
	runFormatCases(t, newTestFormatter(t), []formatCase{
		{"[#] items: [list]foo,bar,baz[/list]", "3 items: foo, bar and baz"},
		{"[list or]foo,bar,baz[/list] ([#])", "foo, bar or baz (3)"},
		{"[list]foo[/list] item[s]", "foo item"},
		{"[list]foo,bar,baz[/list] - [#] item[s]", "foo, bar and baz - 3 items"},
		{"item[s] - [list]foo[/list]", "item - foo"},
		{"item[s] - [list or]foo[/list]", "item - foo"},
		{"item[s] - [list]foo,bar,baz[/list]", "items - foo, bar and baz"},
		{"item[s] - [list or]foo,bar,baz[/list]", "items - foo, bar or baz"},
		{"[#] item[s] - [list]foo[/list]", "1 item - foo"},
		{"[#] item[s] - [list or]foo[/list]", "1 item - foo"},
		{"[#] item[s] - [list]foo,bar,baz[/list]", "3 items - foo, bar and baz"},
		{"[#] item[s] - [list or]foo,bar,baz[/list]", "3 items - foo, bar or baz"},
	})
}

func TestFormatter_Directions(t *testing.T) {
	runFormatCases(t, newTestFormatter(t), []formatCase{
		{"123 [# <] 456", "123 123 456"},
		{"123 [# >] 456", "123 456 456"},
		{"123 [# |] 456", "123 123 456"},
		{"[list]foo,bar[/list] [# <] [list]baz,quz,quark[/list]", "foo and bar 2 baz, quz and quark"},
		{"[list]foo,bar[/list] [# >] [list]baz,quz,quark[/list]", "foo and bar 3 baz, quz and quark"},
		{"[list]foo,bar[/list] [# |] [list]baz,quz,quark[/list]", "foo and bar 2 baz, quz and quark"},
		{"1 [person|people <] 3", "1 person 3"},
		{"1 [person|people <>] 3", "1 person 3"},
		{"1 [person|people >] 3", "1 people 3"},
		{"1 [person|people ><] 3", "1 people 3"},
		{"1 [person|people |] 3", "1 person 3"},
	})
}

func TestFormatter_Styles(t *testing.T) {
	f := newTestFormatter(t)
	const reset = "\x1b[0m"

	runFormatCases(t, f, []formatCase{
		{"[red]Red[/red]", "\x1b[31mRed" + reset},
		{
			"[red]Red[/red], [style green]Green[/style], [color blue]Blue[/color]",
			"\x1b[31mRed" + reset + ", \x1b[32mGreen" + reset + ", \x1b[34mBlue" + reset,
		},
		{
			`"[list or]foo,bar,baz[/list]" [gray bold]([#] item[|s] in total)[/gray]`,
			`"foo, bar or baz" ` + "\x1b[90m\x1b[1m(3 items in total)" + reset,
		},
		{"1 [person|people] with 2 [arm|arms] and 2 [leg|legs]", "1 person with 2 arms and 2 legs"},
		{
			"[bold]1[/bold] [person|people] with [italic blue]2[/italic] [arm|arms] and [style bold fgBlue bgWhite]2[/style] [leg|legs]",
			"\x1b[1m1" + reset + " person with \x1b[3m\x1b[34m2" + reset + " arms and \x1b[1m\x1b[34m\x1b[47m2" + reset + " legs",
		},
	})
}

func TestFormatter_WithoutColor(t *testing.T) {
	f, err := NewFormatter(FormatterConfig{Leaves: MustNewLocale(DefaultLocale, WithLocaleColor(false))})
	require.NoError(t, err)

	result, err := f.Format("[bold red]1[/bold] [item|items]")
	require.NoError(t, err)
	assert.Equal(t, "1 item", result)
}

func TestFormatter_Properties(t *testing.T) {
	f := newTestFormatter(t)

	t.Run("text without tags is unchanged", func(t *testing.T) {
		for _, s := range []string{"", "hello", "a, b; c!", "1.2.3 and 42", "trailing ]"} {
			result, err := f.Format(s)
			require.NoError(t, err)
			assert.Equal(t, s, result)
		}
	})

	t.Run("numeric preserved until claimed", func(t *testing.T) {
		result, err := f.Format("1,000 items")
		require.NoError(t, err)
		assert.Equal(t, "1,000 items", result)
	})
}

func TestFormatter_Errors(t *testing.T) {
	f := newTestFormatter(t)

	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"no numeric for bytes", "[bytes]", KindNumericNotFound},
		{"no numeric for plural", "item[s]", KindNumericNotFound},
		{"no numeric backward", "[# <] 3", KindNumericNotFound},
		{"stray bracket", "open [", KindUnmatchedToken},
		{"unknown style", "[red nope]x", KindUnknownStyleName},
		{"invalid direction", "1 [# direction=<x]", KindInvalidDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.Format(tt.input)
			require.Error(t, err)
			assert.Empty(t, result)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestFormatter_FormatAll(t *testing.T) {
	f := newTestFormatter(t)

	result, err := f.FormatAll([]string{"foo", "bar", "baz"}, " ")
	require.NoError(t, err)
	assert.Equal(t, "foo bar baz", result)

	result, err = f.FormatAll([]string{"foo", "", "bar", "", "baz"}, " ")
	require.NoError(t, err)
	assert.Equal(t, "foo bar baz", result)

	result, err = f.FormatAll([]string{"1 item[s]", "2 item[s]"}, "\n")
	require.NoError(t, err)
	assert.Equal(t, "1 item\n2 items", result)

	_, err = f.FormatAll([]string{"ok", "[bytes]"}, " ")
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	stack := numericStack("n.n")
	for i, tok := range stack {
		tok.Content = strings.Repeat("x", i+1)
	}
	assert.Equal(t, "xxxxxx", Join(stack))
	assert.Empty(t, Join(nil))
}
