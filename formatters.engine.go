package formatters

import (
	"fmt"
	"math"
	"sync"

	"github.com/itsatony/go-formatters/internal"
	"go.uber.org/zap"
)

// Engine renders markup. It is safe for concurrent use; only the message
// catalog is mutable after construction.
type Engine struct {
	config    *engineConfig
	formatter *internal.Formatter
	leaves    Leaves
	messages  map[string]string
	msgMu     sync.RWMutex // protects messages
	logger    *zap.Logger
}

// New creates an Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	formatter, leaves, err := buildFormatter(config)
	if err != nil {
		return nil, err
	}

	logger := loggerOf(config)
	logger.Debug(LogMsgEngineCreated,
		zap.String(LogFieldLocale, config.locale),
		zap.Int(LogFieldRules, formatter.Rules().Len()),
	)

	return &Engine{
		config:    config,
		formatter: formatter,
		leaves:    leaves,
		messages:  make(map[string]string),
		logger:    logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

func loggerOf(config *engineConfig) *zap.Logger {
	if config.logger == nil {
		return zap.NewNop()
	}
	return config.logger
}

// buildFormatter wires leaves, plural table and rules into a pipeline.
func buildFormatter(config *engineConfig) (*internal.Formatter, Leaves, error) {
	leaves := config.leaves
	if leaves == nil {
		locale, err := internal.NewLocale(config.locale,
			internal.WithLocaleColor(config.color),
			internal.WithLocalePlurals(config.plurals),
			internal.WithLocaleClock(config.clock),
		)
		if err != nil {
			return nil, nil, NewInvalidLocaleError(config.locale, err)
		}
		leaves = locale
	}

	formatter, err := internal.NewFormatter(internal.FormatterConfig{
		Rules:   config.rules,
		Leaves:  leaves,
		Plurals: config.plurals,
		Logger:  loggerOf(config),
	})
	if err != nil {
		return nil, nil, wrapError(err)
	}
	return formatter, leaves, nil
}

// pipeline returns the engine's formatter, or a call-local one when
// per-call options are given.
func (e *Engine) pipeline(opts []Option) (*internal.Formatter, *engineConfig, error) {
	if len(opts) == 0 {
		return e.formatter, e.config, nil
	}
	config := e.config.clone()
	for _, opt := range opts {
		opt(config)
	}
	formatter, _, err := buildFormatter(config)
	if err != nil {
		return nil, nil, err
	}
	return formatter, config, nil
}

// Format renders source. Options apply to this call only.
func (e *Engine) Format(source string, opts ...Option) (string, error) {
	formatter, _, err := e.pipeline(opts)
	if err != nil {
		return "", err
	}
	out, err := formatter.Format(source)
	if err != nil {
		return "", wrapError(err)
	}
	return out, nil
}

// Formatf renders fmt.Sprintf(format, args...).
func (e *Engine) Formatf(format string, args ...any) (string, error) {
	return e.Format(fmt.Sprintf(format, args...))
}

// FormatAll renders each value independently and joins the results with the
// join separator. nil, false, zero numbers, empty strings and nil string
// pointers are skipped. Strings, string pointers, fmt.Stringer values and
// numbers are accepted; anything else fails with KindInvalidInput.
func (e *Engine) FormatAll(values []any, opts ...Option) (string, error) {
	formatter, config, err := e.pipeline(opts)
	if err != nil {
		return "", err
	}

	sources := make([]string, 0, len(values))
	for _, v := range values {
		s, ok, err := sourceOf(v)
		if err != nil {
			return "", err
		}
		if ok {
			sources = append(sources, s)
		}
	}

	out, err := formatter.FormatAll(sources, config.join)
	if err != nil {
		return "", wrapError(err)
	}
	return out, nil
}

// sourceOf converts a FormatAll element to markup. ok is false for values
// that are skipped.
func sourceOf(v any) (string, bool, error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, x != "", nil
	case *string:
		if x == nil {
			return "", false, nil
		}
		return *x, *x != "", nil
	case bool:
		if !x {
			return "", false, nil
		}
		return "", false, NewInvalidInputError(v)
	case int:
		return numberSource(float64(x))
	case int64:
		return numberSource(float64(x))
	case float64:
		return numberSource(x)
	case fmt.Stringer:
		s := x.String()
		return s, s != "", nil
	default:
		return "", false, NewInvalidInputError(v)
	}
}

func numberSource(v float64) (string, bool, error) {
	if v == 0 || math.IsNaN(v) {
		return "", false, nil
	}
	return internal.FormatPlainNumber(v), true, nil
}

// Validate runs both passes over source and discards the output.
func (e *Engine) Validate(source string) error {
	_, err := e.Format(source)
	return err
}

// Leaves returns the leaf formatters used by the engine.
func (e *Engine) Leaves() Leaves {
	return e.leaves
}

// Locale returns the configured locale tag.
func (e *Engine) Locale() string {
	return e.config.locale
}

// Rules returns the effective rule set in the order rules are tried.
func (e *Engine) Rules() []*Rule {
	return e.formatter.Rules().Rules()
}

// TokenInfo is a read-only view of a tokenized token.
type TokenInfo struct {
	Rule    string            `json:"rule"`
	Kind    string            `json:"kind"`
	Offset  int               `json:"offset"`
	Length  int               `json:"length"`
	Source  string            `json:"source"`
	Content string            `json:"content"`
	Numeric *float64          `json:"numeric,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Items   []string          `json:"items,omitempty"`
}

// Tokenize runs the first pass only and describes the resulting stack.
// Content is the text before resolution.
func (e *Engine) Tokenize(source string) ([]TokenInfo, error) {
	stack, err := e.formatter.Tokenize(source)
	if err != nil {
		return nil, wrapError(err)
	}

	infos := make([]TokenInfo, len(stack))
	for i, tok := range stack {
		info := TokenInfo{
			Rule:    tok.Rule.Name,
			Kind:    tok.Rule.Kind.String(),
			Offset:  tok.Offset,
			Length:  tok.Length,
			Source:  source[tok.Offset : tok.Offset+tok.Length],
			Content: tok.Content,
			Items:   tok.Items,
		}
		if tok.HasNumeric && !math.IsNaN(tok.Numeric) {
			v := tok.Numeric
			info.Numeric = &v
		}
		if len(tok.Attrs) > 0 {
			info.Attrs = tok.Attrs.Map()
		}
		infos[i] = info
	}
	return infos, nil
}
