package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/drake/splitview/replay"
	"github.com/drake/splitview/splitview"
)

func newReplayCmd() *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Run gesture scripts headlessly and print the pane sizes",
		Long: `replay reads a JSON file of gesture scripts, drives a split view with
each one and prints the flex declarations after every step. Steps that carry
an expectation are checked; any mismatch makes the command fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, closer, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open scripts: %w", err)
			}
			defer f.Close()

			scripts, err := replay.Load(f)
			if err != nil {
				return err
			}

			failed := 0
			for _, s := range scripts {
				if only != "" && s.Name != only {
					continue
				}
				frames, err := replay.Run(s, splitview.WithLogger(logger.With().Str("script", s.Name).Logger()))
				if err != nil {
					return err
				}
				failed += report(cmd.OutOrStdout(), s, frames)
			}
			if failed > 0 {
				return fmt.Errorf("%d expectation(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&only, "script", "s", "", "run only the script with this name")
	return cmd
}

// report prints one table per script and returns the number of failed
// expectations.
func report(w io.Writer, s replay.Script, frames []replay.Frame) int {
	failed := 0
	var notes []string

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "step", "primary", "secondary", "slots", "dragging")
	for i, f := range frames {
		t.Row(
			strconv.Itoa(f.Step),
			describe(s.Steps[i]),
			orDash(f.Primary),
			orDash(f.Secondary),
			strings.Join(f.Slots, ","),
			strconv.FormatBool(f.Dragging),
		)
		for _, m := range s.Steps[i].Expect.Mismatches(f) {
			failed++
			notes = append(notes, fmt.Sprintf("  step %d: %s", f.Step, m))
		}
	}

	fmt.Fprintf(w, "%s (%s, %gx%g)\n", s.Name, orientationOf(s), s.Width, s.Height)
	fmt.Fprintln(w, t.Render())
	for _, n := range notes {
		fmt.Fprintln(w, n)
	}
	return failed
}

func describe(step replay.Step) string {
	switch step.Do {
	case "down", "move", "up":
		return fmt.Sprintf("%s %g,%g", step.Do, step.X, step.Y)
	case "remove":
		return fmt.Sprintf("remove %d", step.Index)
	case "dir":
		return "dir " + step.Value
	}
	return step.Do
}

func orientationOf(s replay.Script) string {
	if s.Orientation == "" {
		return string(splitview.Horizontal)
	}
	return s.Orientation
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
