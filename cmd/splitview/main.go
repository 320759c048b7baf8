// Package main provides the splitview command: a resizable two-pane
// terminal view, plus a headless replay of gesture scripts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "splitview",
		Short: "A resizable two-pane terminal view",
		Long: `splitview shows the first two panes side by side (or stacked) with a
draggable divider between them. Lines piped on stdin go to the first pane.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}
	registerFlags(root)

	root.AddCommand(newReplayCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "splitview %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", buildDate)
		},
	}
}
