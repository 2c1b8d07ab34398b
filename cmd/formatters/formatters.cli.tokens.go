package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-formatters"
)

// tokensConfig holds parsed tokens command configuration
type tokensConfig struct {
	inputPath string
	format    string
	engine    engineFlags
	args      []string
}

func runTokens(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseTokensFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	source, ok, err := markupSource(cfg.inputPath, cfg.args, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}
	if !ok {
		fmt.Fprintln(stderr, ErrMsgMissingInput)
		return ExitCodeUsageError
	}

	envCfg, err := loadEnvConfig()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeUsageError
	}

	engine, err := newEngine(cfg.engine.merge(envCfg), stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeInputError
	}

	tokens, err := engine.Tokenize(source)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgFormatFailed, err)
		return ExitCodeValidationError
	}

	if cfg.format == OutputFormatJSON {
		jsonBytes, err := json.MarshalIndent(tokens, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEncodeFailed, err)
			return ExitCodeError
		}
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}
	outputTokensText(tokens, stdout)
	return ExitCodeSuccess
}

func parseTokensFlags(args []string) (*tokensConfig, error) {
	fs := flag.NewFlagSet(CmdNameTokens, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &tokensConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	cfg.engine.register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.args = fs.Args()

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputTokensText(tokens []formatters.TokenInfo, stdout io.Writer) {
	fmt.Fprintln(stdout, TokenTextHeader)
	for _, tok := range tokens {
		fmt.Fprintf(stdout, TokenTextFormat+FmtNewline, tok.Rule, tok.Offset, tok.Length, tok.Source)
	}
}
