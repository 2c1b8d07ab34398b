package internal

import "fmt"

// Token is one parsed unit of the source: a tag, a numeric run or a run of
// literal text.
type Token struct {
	Rule       *Rule             // the rule that produced the token
	Fields     map[string]string // named captures of the rule's pattern
	Attrs      Attributes        // parsed from Fields["attrs"], never nil
	Numeric    float64           // valid when HasNumeric
	HasNumeric bool
	Items      []string // split list items for list tokens
	Content    string   // rendered text, overwritten during resolution
	Offset     int      // byte offset in the source
	Length     int      // consumed bytes
}

// newToken builds a token from a rule match.
func newToken(rule *Rule, fields map[string]string, offset, length int) *Token {
	return &Token{
		Rule:    rule,
		Fields:  fields,
		Attrs:   ParseAttributes(fields[FieldAttrs]),
		Content: fields[FieldContent],
		Offset:  offset,
		Length:  length,
	}
}

// Field returns a named capture, empty when absent.
func (t *Token) Field(name string) string {
	return t.Fields[name]
}

// SetNumeric marks the token as numeric-bearing.
func (t *Token) SetNumeric(v float64) {
	t.Numeric = v
	t.HasNumeric = true
}

// IsList reports whether the token came from the list rule.
func (t *Token) IsList() bool {
	return t.Rule != nil && t.Rule.Kind == RuleKindList
}

// String returns a debug representation of the token.
func (t *Token) String() string {
	name := StringValueEmpty
	if t.Rule != nil {
		name = t.Rule.Name
	}
	if t.HasNumeric {
		return fmt.Sprintf("Token{%s: %q = %v @ %d}", name, t.Content, t.Numeric, t.Offset)
	}
	return fmt.Sprintf("Token{%s: %q @ %d}", name, t.Content, t.Offset)
}
