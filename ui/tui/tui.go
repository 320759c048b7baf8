package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/splitview/internal/buffer"
)

// Queue sizing for messages sent from other goroutines.
const (
	queueInitialCap = 256
	queueHardLimit  = 50000
)

// UI runs a Model as a Bubble Tea program and lets other goroutines feed
// lines into its panes.
type UI struct {
	model   Model
	program *tea.Program

	// Message queue - unbounded buffer drained by a single goroutine.
	// This decouples callers from tea.Program.Send() which can block.
	msgIn  chan<- tea.Msg
	msgOut <-chan tea.Msg
	stop   context.CancelFunc

	// Shutdown coordination
	done     chan struct{}
	doneOnce sync.Once
}

// NewUI wraps model in a UI.
func NewUI(model Model) *UI {
	ctx, cancel := context.WithCancel(context.Background())
	logger := model.logger
	in, out := buffer.Unbounded[tea.Msg](ctx, queueInitialCap, queueHardLimit, func(limit int) {
		logger.Warn().Int("limit", limit).Msg("ui queue full, dropping oldest message")
	})
	return &UI{
		model:  model,
		msgIn:  in,
		msgOut: out,
		stop:   cancel,
		done:   make(chan struct{}),
	}
}

// send queues a message for delivery to the Bubble Tea program.
// Blocks until message is queued or the UI has exited.
func (u *UI) send(msg tea.Msg) {
	select {
	case <-u.done:
		return
	case u.msgIn <- msg:
	}
}

// WritePane appends a line to the pane with the given title.
func (u *UI) WritePane(title, text string) {
	u.send(paneWriteMsg{Title: title, Text: text})
}

// ClearPane empties the pane with the given title.
func (u *UI) ClearPane(title string) {
	u.send(paneClearMsg{Title: title})
}

// Run starts the TUI and blocks until exit. Extra options are appended
// to the defaults (alt screen, cell-motion mouse reporting).
func (u *UI) Run(opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)
	u.program = tea.NewProgram(u.model, options...)

	// Single goroutine drains message queue to Bubble Tea.
	go func() {
		for {
			select {
			case <-u.done:
				return
			case msg, ok := <-u.msgOut:
				if !ok {
					return
				}
				u.program.Send(msg)
			}
		}
	}()

	_, err := u.program.Run()

	u.shutdown()
	return err
}

// Done returns a channel that closes when the UI exits.
func (u *UI) Done() <-chan struct{} {
	return u.done
}

// Quit signals the TUI to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
	u.shutdown()
}

func (u *UI) shutdown() {
	u.doneOnce.Do(func() {
		close(u.done)
		u.stop()
	})
}
