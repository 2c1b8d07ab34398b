package main

import (
	"flag"
	"fmt"
	"io"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	inputPath  string
	outputPath string
	message    string
	engine     engineFlags
	args       []string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
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

	var result string
	switch {
	case cfg.message != "":
		values := make([]any, len(cfg.args))
		for i, a := range cfg.args {
			values[i] = a
		}
		result, err = engine.FormatMessage(cfg.message, values...)

	case cfg.inputPath != "":
		source, readErr := readInput(cfg.inputPath, stdin)
		if readErr != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, readErr)
			return ExitCodeInputError
		}
		result, err = engine.Format(source)

	case len(cfg.args) > 0:
		values := make([]any, len(cfg.args))
		for i, a := range cfg.args {
			values[i] = a
		}
		result, err = engine.FormatAll(values)

	default:
		fmt.Fprintln(stderr, ErrMsgMissingInput)
		return ExitCodeUsageError
	}

	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgFormatFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result+FmtNewline), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.message, FlagMessage, "", "")
	fs.StringVar(&cfg.message, FlagMessageShort, "", "")
	cfg.engine.register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.args = fs.Args()

	return cfg, nil
}
