// Package game wires the simulation to the renderer, input, and audio.
package game

import (
	"chosenoffset.com/rebound/internal/audio"
	"chosenoffset.com/rebound/internal/render"
	"chosenoffset.com/rebound/internal/sim"
)

// Game holds the simulation state and the backend seams. It implements
// render.Game.
type Game struct {
	State    *sim.State
	Renderer render.Renderer
	InputMgr render.InputManager
	Sound    *audio.Player
}

// New creates the game around an initial simulation state.
func New(state *sim.State, renderer render.Renderer, inputMgr render.InputManager, sound *audio.Player) *Game {
	return &Game{
		State:    state,
		Renderer: renderer,
		InputMgr: inputMgr,
		Sound:    sound,
	}
}

// Update advances the simulation by one fixed timestep and handles the
// quit and mute keys.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) || g.InputMgr.IsKeyJustPressed(render.KeyQ) {
		return render.Termination
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.Sound.ToggleMute()
	}

	// Fixed timestep at the 60 TPS tick rate.
	dt := 1.0 / 60.0
	res := g.State.Step(dt)
	if res.Bounced {
		g.Sound.Blip(res.ImpactSpeed)
	}

	return nil
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.State.Cfg.ScreenWidth, g.State.Cfg.ScreenHeight
}
