// layout-test is a testbed for the split layout.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drake/splitview/internal/logging"
	"github.com/drake/splitview/splitview"
	"github.com/drake/splitview/ui/tui"
)

// scenario is one canned split setup plus the lines written into its panes.
type scenario struct {
	about string
	opts  tui.Options
	lines map[string][]string // pane title -> lines
}

func terminalConfig() splitview.Config {
	cfg := splitview.DefaultConfig()
	cfg.SplitterSize = 1
	return cfg
}

func scenarios() map[string]scenario {
	horizontal := terminalConfig()

	vertical := terminalConfig()
	vertical.Orientation = splitview.Vertical

	observing := terminalConfig()
	observing.Observe = true

	return map[string]scenario{
		"default": {
			about: "two panes side by side",
			opts:  tui.Options{Config: horizontal, Panes: []string{"left", "right"}},
			lines: map[string][]string{
				"left":  {"\033[1;36mWelcome to the Layout Test!\033[0m", "", "Drag the divider with the mouse."},
				"right": {"The right pane takes whatever the left one gives up."},
			},
		},
		"vertical": {
			about: "stacked panes, resized along the height",
			opts:  tui.Options{Config: vertical, Panes: []string{"top", "bottom"}},
			lines: map[string][]string{
				"top":    {"Drag the divider up and down.", "Horizontal motion is ignored."},
				"bottom": {"Press r: stacked panes ignore the reading direction."},
			},
		},
		"rtl": {
			about: "right-to-left host, drag is mirrored",
			opts:  tui.Options{Config: horizontal, Dir: splitview.RTL, Panes: []string{"first", "second"}},
			lines: map[string][]string{
				"first": {"dir=rtl: dragging right grows the second pane.", "Press r to flip back to ltr."},
			},
		},
		"observe": {
			about: "panes are reassigned as children change",
			opts:  tui.Options{Config: observing, Panes: []string{"one", "two", "three"}},
			lines: map[string][]string{
				"one": {"Press x to remove this pane; two and three move up."},
				"two": {"Press a to append; new panes wait for a free slot."},
			},
		},
		"crowded": {
			about: "more children than slots, no observer",
			opts:  tui.Options{Config: horizontal, Panes: []string{"alpha", "beta", "gamma", "delta"}},
			lines: map[string][]string{
				"alpha": {"gamma and delta have no slot and are never shown."},
				"beta":  {"Without observe, removing alpha leaves beta alone."},
			},
		},
	}
}

func scenarioNames() []string {
	all := scenarios()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newRootCmd() *cobra.Command {
	var (
		name    string
		logFile string
	)

	cmd := &cobra.Command{
		Use:          "layout-test",
		Short:        "Try the split layout with canned scenarios",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, ok := scenarios()[name]
			if !ok {
				return fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(scenarioNames(), ", "))
			}

			lc := logging.DefaultConfig()
			lc.File = logFile
			lc.Level = zerolog.DebugLevel
			logger, closer, err := logging.New(lc)
			if err != nil {
				return err
			}
			defer closer.Close()
			sc.opts.Logger = logger.With().Str("scenario", name).Logger()

			model, err := tui.NewModel(sc.opts)
			if err != nil {
				return err
			}
			ui := tui.NewUI(model)

			// Send welcome lines once the program is running
			go func() {
				time.Sleep(100 * time.Millisecond)
				for _, title := range sc.opts.Panes {
					for _, line := range sc.lines[title] {
						ui.WritePane(title, line)
					}
				}
			}()

			return ui.Run()
		},
	}
	cmd.Flags().StringVar(&name, "scenario", "default", "layout scenario ("+strings.Join(scenarioNames(), ", ")+")")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
