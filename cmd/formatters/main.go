// Command formatters renders, checks and inspects formatter markup.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

// command is one entry of the CLI's command table.
type command struct {
	name    string
	summary string
	usage   string
	run     func(args []string, stdin io.Reader, stdout, stderr io.Writer) int
}

// commands lists the CLI commands in the order help shows them.
func commands() []command {
	return []command{
		{CmdNameRender, SummaryRender, HelpRenderUsage, runRender},
		{CmdNameValidate, SummaryValidate, HelpValidateUsage, runValidate},
		{CmdNameTokens, SummaryTokens, HelpTokensUsage, runTokens},
		{CmdNamePluralize, SummaryPluralize, HelpPluralizeUsage,
			func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
				return runPluralize(args, stdout, stderr)
			}},
		{CmdNameVersion, SummaryVersion, HelpVersionUsage,
			func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
				return runVersion(args, stdout, stderr)
			}},
		{CmdNameHelp, SummaryHelp, HelpHelpUsage,
			func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
				return runHelp(args, stdout, stderr)
			}},
	}
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func main() {
	// .env is optional; FORMATTERS_* may come from the real environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, FmtErrorWithCause, ErrMsgDotenvFailed, err)
	}

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches args[0] to its command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return runHelp(nil, stdout, stderr)
	}

	c, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgUnknownCommand, args[0])
		fmt.Fprintln(stderr, HelpSeeHelp)
		return ExitCodeUsageError
	}
	return c.run(args[1:], stdin, stdout, stderr)
}
