package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/splitview/splitview"
)

func loadScripts(t *testing.T, filename string) []Script {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", filename))
	require.NoError(t, err)
	defer f.Close()

	scripts, err := Load(f)
	require.NoError(t, err, "parse %s", filename)
	return scripts
}

// checkFrame compares only the fields a step's expectation names.
func checkFrame(t *testing.T, step Step, got Frame) {
	t.Helper()
	exp := step.Expect
	if exp == nil {
		return
	}
	if exp.Primary != nil {
		assert.Equal(t, *exp.Primary, got.Primary, "step %d primary", got.Step)
	}
	if exp.Secondary != nil {
		assert.Equal(t, *exp.Secondary, got.Secondary, "step %d secondary", got.Step)
	}
	if exp.Slots != nil {
		assert.Equal(t, exp.Slots, got.Slots, "step %d slots", got.Step)
	}
	if exp.Dragging != nil {
		assert.Equal(t, *exp.Dragging, got.Dragging, "step %d dragging", got.Step)
	}
}

// TestFeatures runs every *_tests.json script under testdata.
func TestFeatures(t *testing.T) {
	files, err := os.ReadDir("testdata")
	require.NoError(t, err)

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), "_tests.json") {
			continue
		}
		feature := strings.TrimSuffix(file.Name(), "_tests.json")
		t.Run(feature, func(t *testing.T) {
			for _, s := range loadScripts(t, file.Name()) {
				t.Run(s.Name, func(t *testing.T) {
					frames, err := Run(s)
					require.NoError(t, err)
					require.Len(t, frames, len(s.Steps))
					for i, step := range s.Steps {
						checkFrame(t, step, frames[i])
					}
				})
			}
		})
	}
}

func TestRun_ResizeListenerSeesEveryMove(t *testing.T) {
	var got []splitview.Resize
	s := Script{
		Name: "listener", Width: 408, Height: 10, Children: 2,
		Steps: []Step{
			{Do: "down", X: 204},
			{Do: "move", X: 254},
			{Do: "move", X: 604},
			{Do: "up", X: 604},
		},
	}

	_, err := Run(s, splitview.WithResizeListener(func(r splitview.Resize) { got = append(got, r) }))
	require.NoError(t, err)
	assert.Equal(t, []splitview.Resize{
		{Primary: 250, Secondary: 150, Track: 400},
		{Primary: 400, Secondary: 0, Track: 400},
	}, got)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(Script{Name: "bad orientation", Orientation: "diagonal"})
	assert.ErrorIs(t, err, splitview.ErrInvalidOrientation)

	_, err = Run(Script{Name: "bad dir", Dir: "up"})
	assert.ErrorIs(t, err, splitview.ErrInvalidDirection)

	frames, err := Run(Script{Name: "bad step", Width: 10, Height: 1, Steps: []Step{{Do: "move"}, {Do: "wiggle"}}})
	assert.ErrorIs(t, err, ErrUnknownStep)
	assert.Len(t, frames, 1)

	_, err = Run(Script{Name: "bad index", Width: 10, Height: 1, Children: 1, Steps: []Step{{Do: "remove", Index: 3}}})
	assert.ErrorContains(t, err, "out of range")
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`{"scripts": [{"name": "x", "widht": 10}]}`))
	assert.Error(t, err)
}

func TestExpect_Mismatches(t *testing.T) {
	primary, dragging := "1 1 250px", true
	e := &Expect{Primary: &primary, Slots: []string{"primary", "secondary"}, Dragging: &dragging}

	assert.Empty(t, e.Mismatches(Frame{Primary: "1 1 250px", Slots: []string{"primary", "secondary"}, Dragging: true}))

	got := e.Mismatches(Frame{Primary: "1 1 200px", Slots: []string{"primary", "-"}, Dragging: true})
	assert.Len(t, got, 2)
	assert.Contains(t, got[0], "primary")

	var none *Expect
	assert.Nil(t, none.Mismatches(Frame{}))
}
