package internal

import (
	"go.uber.org/zap"
)

// ResolveContext is handed to a rule's operate step. It exposes the calling
// token, its index and the whole stack. Forward references are legal.
type ResolveContext struct {
	Token   *Token
	Index   int
	Stack   []*Token
	Leaves  Leaves
	Plurals PluralTable
}

// searchConfig collects SearchOption values.
type searchConfig struct {
	direction string
	lists     bool
}

// SearchOption adjusts a nearest numeric search.
type SearchOption func(*searchConfig)

// WithDirection overrides the direction attribute of the calling token.
func WithDirection(direction string) SearchOption {
	return func(c *searchConfig) {
		c.direction = direction
	}
}

// WithoutLists ignores list blocks as numeric sources.
func WithoutLists() SearchOption {
	return func(c *searchConfig) {
		c.lists = false
	}
}

// NumericMatch is the outcome of a nearest numeric search.
type NumericMatch struct {
	Index int
	Token *Token
}

// Value returns the numeric value of the matched token.
func (m NumericMatch) Value() float64 {
	return m.Token.Numeric
}

// Content returns the current text of the matched token.
func (m NumericMatch) Content() string {
	return m.Token.Content
}

// Attrs returns the attributes of the calling token.
func (c *ResolveContext) Attrs() Attributes {
	return c.Token.Attrs
}

// NearestNumeric finds the closest numeric-bearing token. The direction is
// taken from the options, then the token's direction attribute, then "|".
// Each character of a compound direction is exhausted before the next one
// is tried.
func (c *ResolveContext) NearestNumeric(opts ...SearchOption) (NumericMatch, error) {
	cfg := searchConfig{lists: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	direction := cfg.direction
	if direction == StringValueEmpty {
		direction = c.Token.Attrs.Direction()
	}
	if direction == StringValueEmpty {
		direction = DirectionNearest
	}

	for _, d := range direction {
		switch string(d) {
		case DirectionBackward, DirectionForward, DirectionNearest:
		default:
			return NumericMatch{}, NewInvalidDirectionError(direction, c.Token.Offset)
		}
	}

	for _, d := range direction {
		if i, ok := c.search(string(d), cfg); ok {
			return NumericMatch{Index: i, Token: c.Stack[i]}, nil
		}
	}

	return NumericMatch{}, NewNumericNotFoundError(direction, c.Index, len(c.Stack), c.Token.Offset)
}

// search scans one direction by increasing distance from the calling token.
func (c *ResolveContext) search(direction string, cfg searchConfig) (int, bool) {
	n := len(c.Stack)
	switch direction {
	case DirectionBackward:
		for i := c.Index - 1; i >= 0; i-- {
			if c.isNumeric(i, cfg) {
				return i, true
			}
		}
	case DirectionForward:
		for i := c.Index + 1; i < n; i++ {
			if c.isNumeric(i, cfg) {
				return i, true
			}
		}
	case DirectionNearest:
		// backward wins ties
		for dist := 1; dist < n; dist++ {
			if i := c.Index - dist; i >= 0 && c.isNumeric(i, cfg) {
				return i, true
			}
			if i := c.Index + dist; i < n && c.isNumeric(i, cfg) {
				return i, true
			}
		}
	}
	return -1, false
}

func (c *ResolveContext) isNumeric(i int, cfg searchConfig) bool {
	t := c.Stack[i]
	if !t.HasNumeric {
		return false
	}
	return cfg.lists || !t.IsList()
}

// ReplaceNearestNumeric overwrites the content of the nearest numeric token
// with fn applied to its value.
func (c *ResolveContext) ReplaceNearestNumeric(fn func(v float64) (string, error), opts ...SearchOption) error {
	m, err := c.NearestNumeric(opts...)
	if err != nil {
		return err
	}
	content, err := fn(m.Value())
	if err != nil {
		return err
	}
	m.Token.Content = content
	return nil
}

// RemoveSelf blanks the calling token. Tokens are never dropped from the
// stack.
func (c *ResolveContext) RemoveSelf() {
	c.Token.Content = StringValueEmpty
}

// Resolver runs the second pass over a token stack.
type Resolver struct {
	leaves  Leaves
	plurals PluralTable
	logger  *zap.Logger
}

// NewResolver creates a resolver. A nil plural table uses the default one.
func NewResolver(leaves Leaves, plurals PluralTable, logger *zap.Logger) *Resolver {
	if plurals == nil {
		plurals = DefaultPluralTable
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		leaves:  leaves,
		plurals: plurals,
		logger:  logger,
	}
}

// Resolve operates every token in stack order, mutating content in place.
// The first failure aborts the pass.
func (r *Resolver) Resolve(stack []*Token) error {
	r.logger.Debug(LogMsgResolverStart, zap.Int(LogFieldTokens, len(stack)))

	for i, token := range stack {
		ctx := &ResolveContext{
			Token:   token,
			Index:   i,
			Stack:   stack,
			Leaves:  r.leaves,
			Plurals: r.plurals,
		}
		if err := r.operate(ctx); err != nil {
			return withOffset(err, token.Offset)
		}
	}

	r.logger.Debug(LogMsgResolverEnd)
	return nil
}

func (r *Resolver) operate(ctx *ResolveContext) error {
	token := ctx.Token

	switch token.Rule.Kind {
	case RuleKindBytes:
		if err := ctx.ReplaceNearestNumeric(func(v float64) (string, error) {
			return r.leaves.Bytes(v), nil
		}); err != nil {
			return err
		}
		ctx.RemoveSelf()

	case RuleKindNumber:
		if err := ctx.ReplaceNearestNumeric(func(v float64) (string, error) {
			return r.leaves.Number(v), nil
		}); err != nil {
			return err
		}
		ctx.RemoveSelf()

	case RuleKindPercentage:
		opts := PercentOptionsFromAttrs(token.Attrs)
		if err := ctx.ReplaceNearestNumeric(func(v float64) (string, error) {
			return r.leaves.Percentage(v, opts), nil
		}); err != nil {
			return err
		}
		ctx.RemoveSelf()

	case RuleKindQuantifier:
		m, err := ctx.NearestNumeric()
		if err != nil {
			return err
		}
		token.Content = r.leaves.Number(m.Value())

	case RuleKindList:
		content, err := r.leaves.List(token.Items, ListOptionsFromAttrs(token.Attrs))
		if err != nil {
			return err
		}
		token.Content = content

	case RuleKindPlural:
		m, err := ctx.NearestNumeric()
		if err != nil {
			return err
		}
		content, err := r.plurals.Pluralize(PluralByValueAndWord(m.Value(), token.Field(FieldPluralRules)))
		if err != nil {
			return err
		}
		token.Content = content

	case RuleKindCustom:
		return token.Rule.Operate(ctx)
	}

	// style, numeric and text tokens keep their tidied content
	return nil
}
