package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/itsatony/go-formatters"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = VersionDev

// versionConfig holds parsed version command configuration
type versionConfig struct {
	format string
}

// versionInfo describes the binary and the grammar it was built with.
type versionInfo struct {
	Version  string   `json:"version"`
	Module   string   `json:"module"`
	Revision string   `json:"revision,omitempty"`
	Modified bool     `json:"modified,omitempty"`
	Go       string   `json:"go"`
	Platform string   `json:"platform"`
	Locale   string   `json:"default_locale"`
	Rules    []string `json:"rules"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	v := buildVersionInfo(debug.ReadBuildInfo())

	if cfg.format == OutputFormatJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEncodeFailed, err)
			return ExitCodeError
		}
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	outputVersionText(v, stdout)
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &versionConfig{}
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// buildVersionInfo prefers the linked version, then the module version,
// and picks the VCS revision out of the build settings.
func buildVersionInfo(info *debug.BuildInfo, ok bool) *versionInfo {
	v := &versionInfo{
		Version:  version,
		Module:   ModulePath,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Locale:   formatters.DefaultLocale,
	}
	for _, r := range formatters.DefaultRules() {
		v.Rules = append(v.Rules, r.Name)
	}

	if !ok || info == nil {
		return v
	}
	if v.Version == VersionDev && info.Main.Version != "" && info.Main.Version != VersionDevel {
		v.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case BuildSettingRevision:
			v.Revision = s.Value
		case BuildSettingModified:
			v.Modified = s.Value == "true"
		}
	}
	return v
}

func outputVersionText(v *versionInfo, stdout io.Writer) {
	revision := v.Revision
	if revision == "" {
		revision = VersionUnknown
	} else if len(revision) > RevisionShortLen {
		revision = revision[:RevisionShortLen]
	}
	if v.Modified {
		revision += VersionDirtySuffix
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		CLIName, v.Version, v.Module, revision, v.Go, v.Platform, v.Locale, strings.Join(v.Rules, " > "))
}
