package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/itsatony/go-formatters"
)

func runHelp(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		writeMainHelp(stdout)
		return ExitCodeSuccess
	}

	topic := args[0]
	if topic == HelpTopicMarkup {
		writeMarkupHelp(stdout)
		return ExitCodeSuccess
	}

	c, ok := lookupCommand(topic)
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgUnknownTopic, topic)
		fmt.Fprintln(stderr, HelpSeeHelp)
		return ExitCodeUsageError
	}
	fmt.Fprintln(stdout, c.usage)
	return ExitCodeSuccess
}

// writeMainHelp prints the overview built from the command table.
func writeMainHelp(w io.Writer) {
	fmt.Fprintf(w, HelpMainHeader+FmtNewline, CLIName, CLIDescription, CLIName)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, c := range commands() {
		fmt.Fprintf(tw, HelpCommandRow+FmtNewline, c.name, c.summary)
	}
	tw.Flush()

	fmt.Fprintln(w, HelpMainFooter)
}

// writeMarkupHelp prints the tag cheat sheet and the default rule order.
func writeMarkupHelp(w io.Writer) {
	fmt.Fprint(w, HelpMarkupTags+FmtNewline)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, HelpRuleHeader)
	for _, r := range formatters.DefaultRules() {
		fmt.Fprintf(tw, HelpRuleRow+FmtNewline, r.Priority, r.Name, r.Kind)
	}
	tw.Flush()
}
