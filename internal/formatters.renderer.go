package internal

import (
	"strings"

	"go.uber.org/zap"
)

// FormatterConfig wires the pipeline stages together.
type FormatterConfig struct {
	Rules   []*Rule // added to, or overriding, the default rules
	Leaves  Leaves
	Plurals PluralTable
	Logger  *zap.Logger
}

// Formatter runs tokenize, resolve and join for one configuration.
type Formatter struct {
	rules     *RuleSet
	tokenizer *Tokenizer
	resolver  *Resolver
	logger    *zap.Logger
}

// NewFormatter builds the rule set and the pipeline stages.
func NewFormatter(cfg FormatterConfig) (*Formatter, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	plurals := cfg.Plurals
	if plurals == nil {
		plurals = DefaultPluralTable
	}
	leaves := cfg.Leaves
	if leaves == nil {
		locale, err := NewLocale(DefaultLocale, WithLocalePlurals(plurals))
		if err != nil {
			return nil, err
		}
		leaves = locale
	}

	rules, err := NewRuleSet(DefaultRules(), cfg.Rules, logger)
	if err != nil {
		return nil, err
	}

	return &Formatter{
		rules:     rules,
		tokenizer: NewTokenizer(rules, leaves, logger),
		resolver:  NewResolver(leaves, plurals, logger),
		logger:    logger,
	}, nil
}

// Rules returns the effective rule set.
func (f *Formatter) Rules() *RuleSet {
	return f.rules
}

// Tokenize runs the first pass only.
func (f *Formatter) Tokenize(source string) ([]*Token, error) {
	return f.tokenizer.Tokenize(source)
}

// Format renders source.
func (f *Formatter) Format(source string) (string, error) {
	stack, err := f.tokenizer.Tokenize(source)
	if err != nil {
		return StringValueEmpty, err
	}
	if err := f.resolver.Resolve(stack); err != nil {
		return StringValueEmpty, err
	}
	return Join(stack), nil
}

// FormatAll renders every value independently and joins the results with
// sep. Empty values are skipped.
func (f *Formatter) FormatAll(values []string, sep string) (string, error) {
	f.logger.Debug(LogMsgRenderArray, zap.Int(LogFieldElements, len(values)))

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == StringValueEmpty {
			continue
		}
		s, err := f.Format(v)
		if err != nil {
			return StringValueEmpty, err
		}
		out = append(out, s)
	}
	return strings.Join(out, sep), nil
}

// Join concatenates the content of a resolved stack.
func Join(stack []*Token) string {
	var sb strings.Builder
	for _, t := range stack {
		sb.WriteString(t.Content)
	}
	return sb.String()
}
