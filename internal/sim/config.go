// Package sim implements the bouncing-ball simulation: a single ball
// under gravity inside a circular arena, with a bounded motion trail,
// short-lived impact flashes, and a color that cycles on every bounce.
// The per-frame update is a pure function of the state and a timestep,
// so the whole simulation runs headless in tests.
package sim

// Config holds the physics and visual tuning for a run. The knobs are
// internal; there is no config file or environment override.
type Config struct {
	// Window / arena
	ScreenWidth  int
	ScreenHeight int
	ArenaMargin  float64 // padding between arena and window edge

	// Integration
	Gravity        float64 // px/s^2, downward
	LinearFriction float64 // per-frame velocity multiplier (1 = none)

	// Collision response
	Restitution        float64 // normal component kept after a bounce
	TangentialFriction float64 // tangential component kept after a bounce

	// Ball
	BallRadius     float64 // starting radius
	MaxRadiusRatio float64 // radius cap as a fraction of the arena radius
	GrowthPerSec   float64 // px/s of radius growth until the cap
	LaunchSpeed    float64
	LaunchAngle    float64 // radians, 0 = rightward

	// Trail / impact flashes
	TrailCap       int
	ImpactLifetime float64 // seconds
}

// DefaultConfig returns the standard tuning: fully elastic bounces, so
// speed is preserved across collisions.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		ArenaMargin:  50,

		Gravity:        200.0,
		LinearFriction: 1.0,

		Restitution:        1.0,
		TangentialFriction: 1.0,

		BallRadius:     15,
		MaxRadiusRatio: 0.8,
		GrowthPerSec:   12.0,
		LaunchSpeed:    250.0,
		LaunchAngle:    -1.0,

		TrailCap:       140,
		ImpactLifetime: 0.6,
	}
}

// DampedConfig returns the damped tuning: each bounce keeps 95% of the
// normal component and 99% of the tangential one, and a small air
// friction bleeds speed every frame. The ball settles over time.
func DampedConfig() Config {
	cfg := DefaultConfig()
	cfg.Restitution = 0.95
	cfg.TangentialFriction = 0.99
	cfg.LinearFriction = 0.999
	return cfg
}
