package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// printGroupedHelp prints usage for cmd with its flags listed by group.
func printGroupedHelp(w io.Writer, cmd *cobra.Command, groups []flagGroup) {
	fmt.Fprintf(w, "Usage: %s\n", cmd.UseLine())
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimSpace(cmd.Long))

	for _, g := range groups {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", g.title)
		fmt.Fprint(w, g.fs.FlagUsages())
	}

	if cmd.Example != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Examples:")
		fmt.Fprintln(w, cmd.Example)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTML2MD_CONFIG, HTML2MD_BULLET, HTML2MD_SELECTOR,")
	fmt.Fprintln(w, "  HTML2MD_OUTPUT_DIR, HTML2MD_WORKERS, HTML2MD_TIMEOUT")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}
