package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-formatters"
)

// pluralizeConfig holds parsed pluralize command configuration
type pluralizeConfig struct {
	word   string
	count  float64
	prefix bool
}

func runPluralize(args []string, stdout, stderr io.Writer) int {
	cfg, err := parsePluralizeFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	var result string
	if cfg.prefix {
		result, err = formatters.PluralizeN(cfg.count, cfg.word)
	} else {
		result, err = formatters.Pluralize(cfg.word, cfg.count)
	}
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgPluralizeFailed, err)
		return ExitCodeError
	}

	fmt.Fprintln(stdout, result)
	return ExitCodeSuccess
}

func parsePluralizeFlags(args []string) (*pluralizeConfig, error) {
	fs := flag.NewFlagSet(CmdNamePluralize, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &pluralizeConfig{}

	fs.Float64Var(&cfg.count, FlagCount, FlagDefaultCount, "")
	fs.Float64Var(&cfg.count, FlagCountShort, FlagDefaultCount, "")
	fs.BoolVar(&cfg.prefix, FlagPrefix, false, "")
	fs.BoolVar(&cfg.prefix, FlagPrefixShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.word = strings.Join(fs.Args(), " ")
	if cfg.word == "" {
		return nil, errors.New(ErrMsgMissingWord)
	}

	return cfg, nil
}
