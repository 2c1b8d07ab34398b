package internal

import (
	"go.uber.org/zap"
)

// Tokenizer splits markup into a token stack using a priority ordered rule
// set. It holds no per-call state and is safe for concurrent use.
type Tokenizer struct {
	rules  *RuleSet
	leaves Leaves
	logger *zap.Logger
}

// NewTokenizer creates a tokenizer. A nil logger disables logging.
func NewTokenizer(rules *RuleSet, leaves Leaves, logger *zap.Logger) *Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tokenizer{
		rules:  rules,
		leaves: leaves,
		logger: logger,
	}
}

// Tokenize consumes source from left to right. At each position the first
// rule in priority order that matches the head of the remainder wins, even
// when a later rule would match a longer span.
func (t *Tokenizer) Tokenize(source string) ([]*Token, error) {
	t.logger.Debug(LogMsgTokenizerStart, zap.Int(LogFieldSource, len(source)))

	var stack []*Token
	offset := 0

	for offset < len(source) {
		token, err := t.next(source[offset:], offset)
		if err != nil {
			return nil, err
		}
		if err := tidy(token, t.leaves); err != nil {
			return nil, withOffset(err, offset)
		}

		t.logger.Debug(LogMsgRuleMatched,
			zap.String(LogFieldRule, token.Rule.Name),
			zap.Int(LogFieldOffset, offset),
			zap.Int(LogFieldLength, token.Length),
		)

		stack = append(stack, token)
		offset += token.Length
	}

	t.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(stack)))
	return stack, nil
}

// next matches a single token at the head of remaining.
func (t *Tokenizer) next(remaining string, offset int) (*Token, error) {
	for _, rule := range t.rules.rules {
		fields, length, ok := rule.match(remaining)
		if !ok {
			continue
		}
		if length <= 0 {
			return nil, NewInvalidRuleError(rule.Name, ErrMsgEmptyMatch, offset)
		}
		if length > len(remaining) {
			length = len(remaining)
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		return newToken(rule, fields, offset, length), nil
	}
	return nil, NewUnmatchedTokenError(remaining, offset)
}
