package game

import (
	"errors"
	"testing"

	"chosenoffset.com/rebound/internal/render"
	"chosenoffset.com/rebound/internal/sim"
)

// fakeInput is a stub InputManager for driving Update without a window.
type fakeInput struct {
	pressed map[render.Key]bool
}

func (f *fakeInput) IsKeyJustPressed(key render.Key) bool {
	return f.pressed[key]
}

func TestUpdateAdvancesSimulation(t *testing.T) {
	g := New(sim.NewState(sim.DefaultConfig()), nil, &fakeInput{}, nil)

	start := g.State.Ball.Pos
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.State.Ball.Pos == start {
		t.Error("Expected ball to move after Update")
	}
	if g.State.Trail.Len() != 1 {
		t.Errorf("Expected 1 trail position after Update, got %d", g.State.Trail.Len())
	}
}

func TestUpdateTerminatesOnQuitKeys(t *testing.T) {
	for _, key := range []render.Key{render.KeyEscape, render.KeyQ} {
		g := New(sim.NewState(sim.DefaultConfig()), nil, &fakeInput{pressed: map[render.Key]bool{key: true}}, nil)

		if err := g.Update(); !errors.Is(err, render.Termination) {
			t.Errorf("Key %d: expected Termination, got %v", key, err)
		}
	}
}

func TestLayoutMatchesConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	g := New(sim.NewState(cfg), nil, &fakeInput{}, nil)

	w, h := g.Layout(1920, 1080)
	if w != cfg.ScreenWidth || h != cfg.ScreenHeight {
		t.Errorf("Expected logical size %dx%d, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight, w, h)
	}
}
