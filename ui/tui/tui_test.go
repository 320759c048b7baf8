package tui

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/splitview/splitview"
)

func TestUI_QueuesPaneMessages(t *testing.T) {
	m, err := NewModel(Options{Config: termConfig(splitview.Horizontal), Panes: []string{"left"}, Logger: zerolog.Nop()})
	require.NoError(t, err)
	u := NewUI(m)

	u.WritePane("left", "hello")
	u.ClearPane("left")

	for _, want := range []any{paneWriteMsg{Title: "left", Text: "hello"}, paneClearMsg{Title: "left"}} {
		select {
		case got := <-u.msgOut:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatal("message not delivered")
		}
	}
}

func TestUI_QuitBeforeRun(t *testing.T) {
	m, err := NewModel(Options{Config: termConfig(splitview.Horizontal), Logger: zerolog.Nop()})
	require.NoError(t, err)
	u := NewUI(m)

	u.Quit()
	u.Quit()
	select {
	case <-u.Done():
	default:
		t.Fatal("done not closed")
	}

	// Sending after exit returns instead of blocking.
	u.WritePane("left", "late")
}
