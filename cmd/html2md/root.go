package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ErrUsage marks command-line misuse: unknown flags or commands and
// invalid flag values.
var ErrUsage = errors.New("usage error")

// newRootCmd builds the command tree. cobra adds the completion command.
func newRootCmd(env *Environment) *cobra.Command {
	root := &cobra.Command{
		Use:   "html2md",
		Short: "Convert HTML to Markdown",
		Long: `html2md converts HTML files, directories and web pages to CommonMark
Markdown with GitHub-style tables and strikethrough.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetIn(env.Stdin)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.AddCommand(newConvertCmd(env), newVersionCmd())
	return root
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "html2md %s\n", Version)
		},
	}
}

// execute runs the command tree with args (without the program name).
func execute(ctx context.Context, args []string, env *Environment) error {
	root := newRootCmd(env)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrUsage) && isCobraUsageError(err) {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return err
}

// isCobraUsageError reports errors cobra raises for bad commands and
// arguments, which it returns unwrapped.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "invalid argument")
}
