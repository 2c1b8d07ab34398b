package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/itsatony/go-formatters"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envConfig is read from the environment (and a .env file, see main).
type envConfig struct {
	Locale   string `env:"FORMATTERS_LOCALE" envDefault:"en"`
	Join     string `env:"FORMATTERS_JOIN" envDefault:" "`
	Color    string `env:"FORMATTERS_COLOR" envDefault:"auto"`
	Messages string `env:"FORMATTERS_MESSAGES"`
	Debug    bool   `env:"FORMATTERS_DEBUG"`
}

func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// engineFlags are the flags shared by the commands that build an engine.
// Empty values fall back to the environment.
type engineFlags struct {
	locale   string
	join     string
	color    string
	messages string
	joinSet  bool
}

func (f *engineFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.locale, FlagLocale, "", "")
	fs.StringVar(&f.locale, FlagLocaleShort, "", "")
	fs.Func(FlagJoin, "", func(s string) error {
		f.join, f.joinSet = s, true
		return nil
	})
	fs.StringVar(&f.color, FlagColor, "", "")
	fs.StringVar(&f.messages, FlagMessages, "", "")
}

// merge overlays the flags on the environment config.
func (f *engineFlags) merge(cfg *envConfig) *envConfig {
	merged := *cfg
	if f.locale != "" {
		merged.Locale = f.locale
	}
	if f.joinSet {
		merged.Join = f.join
	}
	if f.color != "" {
		merged.Color = f.color
	}
	if f.messages != "" {
		merged.Messages = f.messages
	}
	return &merged
}

// newEngine builds the engine for cfg. Catalog messages are loaded from the
// OS filesystem when a directory is configured.
func newEngine(cfg *envConfig, stdout, stderr io.Writer) (*formatters.Engine, error) {
	color, err := resolveColor(cfg.Color, stdout)
	if err != nil {
		return nil, err
	}

	engine, err := formatters.New(
		formatters.WithLocale(cfg.Locale),
		formatters.WithJoin(cfg.Join),
		formatters.WithColor(color),
		formatters.WithLogger(newLogger(cfg.Debug, stderr)),
	)
	if err != nil {
		return nil, err
	}

	if cfg.Messages != "" {
		if _, err := engine.LoadMessages(afero.NewOsFs(), cfg.Messages); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

// resolveColor decides whether style tags emit control codes. In auto mode
// codes are emitted only when stdout is a terminal.
func resolveColor(mode string, stdout io.Writer) (bool, error) {
	switch mode {
	case ColorModeAlways:
		return true, nil
	case ColorModeNever:
		return false, nil
	case ColorModeAuto, "":
		f, ok := stdout.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, errors.New(ErrMsgInvalidColorMode)
	}
}

func newLogger(debug bool, stderr io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
