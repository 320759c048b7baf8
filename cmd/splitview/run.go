package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drake/splitview/config"
	"github.com/drake/splitview/internal/logging"
	"github.com/drake/splitview/ui/tui"
)

func registerFlags(cmd *cobra.Command) {
	config.RegisterFlags(cmd.PersistentFlags())
}

// setup loads configuration and builds the logger. The returned closer
// must be closed once the command is done.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, io.Closer, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	lc, err := cfg.LogConfig()
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	logger, closer, err := logging.New(lc)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	logger.Debug().Str("config", cfg.Source).Msg("configuration loaded")
	return cfg, logger, closer, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, logger, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	svCfg, err := cfg.SplitView()
	if err != nil {
		return err
	}
	dir, err := cfg.Direction()
	if err != nil {
		return err
	}

	model, err := tui.NewModel(tui.Options{
		Config: svCfg,
		Dir:    dir,
		Panes:  cfg.Panes,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	ui := tui.NewUI(model)

	var opts []tea.ProgramOption
	if piped(os.Stdin) && len(cfg.Panes) > 0 {
		// Keyboard and mouse come from the terminal while stdin feeds a pane.
		opts = append(opts, tea.WithInputTTY())
		go feed(ui, os.Stdin, cfg.Panes[0], logger)
	}

	if err := ui.Run(opts...); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func piped(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// feed copies r line by line into the named pane until r ends or the UI exits.
func feed(ui *tui.UI, r io.Reader, title string, logger zerolog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ui.Done():
			return
		default:
		}
		ui.WritePane(title, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Warn().Err(err).Msg("stdin read failed")
	}
}
