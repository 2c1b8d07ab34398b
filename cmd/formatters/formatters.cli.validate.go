package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-formatters"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	inputPath string
	format    string
	engine    engineFlags
	args      []string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid bool                   `json:"valid"`
	Error *validationErrorOutput `json:"error,omitempty"`
}

type validationErrorOutput struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Offset  *int   `json:"offset,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
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

	result := describeValidation(engine.Validate(source))
	if cfg.format == OutputFormatJSON {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEncodeFailed, err)
			return ExitCodeError
		}
		fmt.Fprintln(stdout, string(jsonBytes))
	} else {
		outputValidationText(result, stdout)
	}

	if !result.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

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

// describeValidation turns a Validate error into its report form.
func describeValidation(err error) validationOutput {
	if err == nil {
		return validationOutput{Valid: true}
	}

	out := &validationErrorOutput{Message: err.Error()}
	if kind, ok := formatters.KindOf(err); ok {
		out.Kind = string(kind)
	}

	var customErr *cuserr.CustomError
	if errors.As(err, &customErr) {
		if raw, ok := customErr.GetMetadata(formatters.MetaKeyOffset); ok {
			if offset, convErr := strconv.Atoi(raw); convErr == nil {
				out.Offset = &offset
			}
		}
	}
	return validationOutput{Valid: false, Error: out}
}

func outputValidationText(result validationOutput, stdout io.Writer) {
	if result.Valid {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return
	}

	fmt.Fprintln(stdout, ValidationTextFailure)
	fmt.Fprintf(stdout, ValidationTextDetail+FmtNewline, result.Error.Kind, result.Error.Message)
	if result.Error.Offset != nil {
		fmt.Fprintf(stdout, ValidationTextOffset+FmtNewline, *result.Error.Offset)
	}
}
