package formatters

import (
	"time"

	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine or a single
// Format call.
type Option func(*engineConfig)

// engineConfig holds the configuration of an Engine.
type engineConfig struct {
	locale  string
	join    string
	color   bool
	rules   []*Rule
	leaves  Leaves
	plurals PluralTable
	clock   func() time.Time
	logger  *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		locale:  DefaultLocale,
		join:    DefaultJoin,
		color:   true,
		plurals: DefaultPluralTable,
		clock:   time.Now,
	}
}

// clone copies the config so per-call options never touch the engine's.
func (c *engineConfig) clone() *engineConfig {
	cp := *c
	cp.rules = append([]*Rule(nil), c.rules...)
	return &cp
}

// WithLocale sets the BCP 47 locale used by the number, percentage and
// list formatters.
// Default: "en"
func WithLocale(locale string) Option {
	return func(c *engineConfig) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithJoin sets the separator placed between FormatAll elements.
// Default: " "
func WithJoin(join string) Option {
	return func(c *engineConfig) {
		c.join = join
	}
}

// WithColor enables or disables terminal control codes. Style names are
// still validated when disabled.
// Default: true
func WithColor(enabled bool) Option {
	return func(c *engineConfig) {
		c.color = enabled
	}
}

// WithRules adds custom rules. A rule named like a default rule replaces it.
func WithRules(rules ...*Rule) Option {
	return func(c *engineConfig) {
		c.rules = append(c.rules, rules...)
	}
}

// WithLeaves replaces the leaf formatters. WithLocale and WithColor have no
// effect on caller supplied leaves.
func WithLeaves(leaves Leaves) Option {
	return func(c *engineConfig) {
		c.leaves = leaves
	}
}

// WithPluralTable replaces the plural guessing table.
func WithPluralTable(table PluralTable) Option {
	return func(c *engineConfig) {
		if table != nil {
			c.plurals = table
		}
	}
}

// WithClock sets the clock used for relative times.
// Default: time.Now
func WithClock(now func() time.Time) Option {
	return func(c *engineConfig) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
