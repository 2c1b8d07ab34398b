// Package formatters renders human-readable text from compact inline markup:
// byte sizes, numbers, percentages, pluralized nouns, conjoined lists and
// terminal styles, all written as square-bracket tags inside a string.
//
//	out, err := formatters.Format("[#] item[s] - [list or]foo,bar,baz[/list]")
//	// out: "3 items - foo, bar or baz"
//
// # Markup
//
// Numeric formatting tags attach to the nearest number, replace it and
// render nothing themselves:
//
//	1024[bytes]          -> 1kb
//	1024[n]              -> 1,024
//	10.318[% dp=2]       -> 10.32%
//
// The quantifier [#] renders the nearest number in place. Lists count as
// numbers (their item count):
//
//	[list]a,b,c[/list] ([#])    -> a, b and c (3)
//
// Plural tags pick a singular or plural form from the nearest number:
//
//	1 [person|people]    -> 1 person
//	3 bottle[s]          -> 3 bottles
//
// Style tags emit terminal control codes until a closing tag:
//
//	[bold red]Error[/bold]
//
// # Search Direction
//
// Tags that look up a number search both ways by default, preferring the
// earlier token when two are equally close. A direction attribute narrows
// the search: < (backward), > (forward), <> (backward, then forward), ><
// (forward, then backward) and | (nearest).
//
//	123 [# >] 456        -> 123 456 456
//
// # Engines
//
// The package-level helpers use a shared English engine. Create an Engine
// for another locale, custom rules or a message catalog:
//
//	engine := formatters.MustNew(formatters.WithLocale("de"), formatters.WithColor(false))
//	engine.MustRegisterMessage("deleted", "%d file[s] deleted")
//	out, _ := engine.FormatMessage("deleted", 3)
//	// out: "3 files deleted"
//
// # Custom Rules
//
// A Rule with a Pattern (anchored at the head of the remaining input) and an
// Operate function extends the grammar. Operate receives a ResolveContext
// with NearestNumeric, ReplaceNearestNumeric and RemoveSelf.
//
// # Errors
//
// Errors are *cuserr.CustomError values carrying the failure kind and the
// source offset as metadata. Use KindOf or IsKind to inspect them.
package formatters
