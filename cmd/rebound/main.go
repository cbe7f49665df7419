package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/rebound/internal/audio"
	"chosenoffset.com/rebound/internal/game"
	ebitenrender "chosenoffset.com/rebound/internal/render/ebiten"
	"chosenoffset.com/rebound/internal/sim"
)

func main() {
	seed := flag.Int64("seed", 0, "Launch angle seed (0 = time-based)")
	mute := flag.Bool("mute", false, "Start with the bounce sound muted")
	damped := flag.Bool("damped", false, "Damped bounces instead of elastic ones")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	cfg := sim.DefaultConfig()
	if *damped {
		cfg = sim.DampedConfig()
	}
	cfg.LaunchAngle = rng.Float64()*2*math.Pi - math.Pi

	sound, err := audio.NewPlayer()
	if err != nil {
		log.Printf("Audio unavailable, running silent: %v", err)
	}
	sound.SetMuted(*mute)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Rebound - Esc to quit, M to mute")

	log.Printf("Starting with seed %d", *seed)
	if err := engine.RunGame(game.New(sim.NewState(cfg), renderer, inputMgr, sound)); err != nil {
		log.Fatal(err)
	}
}
