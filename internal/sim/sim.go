package sim

import "math"

// Arena is the fixed circular boundary containing the ball.
type Arena struct {
	Center Vec2
	Radius float64
}

// Ball is the single moving body of the simulation.
type Ball struct {
	Pos      Vec2
	Vel      Vec2
	Radius   float64
	ColorIdx int // index into the palette
}

// Impact is a short-lived flash recorded where the ball hit the arena.
// It is rendered as a line from the impact point to the ball, fading
// out over its lifetime.
type Impact struct {
	Pos      Vec2
	Life     float64 // remaining seconds
	ColorIdx int     // ball color at the moment of impact
}

// State is the full simulation state. It is advanced one frame at a
// time by Step and never touches a rendering surface.
type State struct {
	Cfg     Config
	Arena   Arena
	Ball    Ball
	Trail   *Trail
	Impacts []Impact
	Palette Palette
	Bounces int
}

// StepResult reports what happened during a single frame update.
type StepResult struct {
	Bounced     bool
	ImpactSpeed float64 // ball speed at the moment of impact
}

// NewState builds the initial state for a run: the arena centered in
// the window, the ball at half arena height launched at the configured
// angle and speed.
func NewState(cfg Config) *State {
	arena := Arena{
		Center: Vec2{float64(cfg.ScreenWidth) / 2, float64(cfg.ScreenHeight) / 2},
		Radius: math.Min(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))/2 - cfg.ArenaMargin,
	}
	return &State{
		Cfg:   cfg,
		Arena: arena,
		Ball: Ball{
			Pos:    Vec2{arena.Center.X, arena.Center.Y - arena.Radius*0.5},
			Vel:    Vec2{cfg.LaunchSpeed * math.Cos(cfg.LaunchAngle), cfg.LaunchSpeed * math.Sin(cfg.LaunchAngle)},
			Radius: cfg.BallRadius,
		},
		Trail:   NewTrail(cfg.TrailCap),
		Palette: NewPalette(),
	}
}

// Step advances the simulation by dt seconds: integrate, grow the
// ball, resolve a boundary collision if any, then update the trail and
// impact flashes. After Step returns, the ball is always fully inside
// the arena.
func (s *State) Step(dt float64) StepResult {
	b := &s.Ball

	b.Vel.Y += s.Cfg.Gravity * dt
	b.Vel = b.Vel.Scale(s.Cfg.LinearFriction)
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if maxRadius := s.Arena.Radius * s.Cfg.MaxRadiusRatio; b.Radius < maxRadius {
		b.Radius = math.Min(maxRadius, b.Radius+s.Cfg.GrowthPerSec*dt)
	}

	var res StepResult
	d := b.Pos.Sub(s.Arena.Center)
	dist := d.Len()
	limit := s.Arena.Radius - b.Radius
	if dist > limit {
		n := Vec2{1, 0}
		if dist > 0 {
			n = d.Scale(1 / dist)
		}

		// Clamp back onto the boundary so penetration never persists.
		b.Pos = s.Arena.Center.Add(n.Scale(limit))

		res.Bounced = true
		res.ImpactSpeed = b.Vel.Len()
		s.reflect(n)

		s.Impacts = append(s.Impacts, Impact{Pos: b.Pos, Life: s.Cfg.ImpactLifetime, ColorIdx: b.ColorIdx})
		b.ColorIdx = s.Palette.Cycle(b.ColorIdx)
		s.Bounces++
	}

	s.Trail.Push(b.Pos)
	s.ageImpacts(dt)
	return res
}

// reflect bounces the velocity off the boundary along the outward unit
// normal n, applying normal restitution and tangential friction.
func (s *State) reflect(n Vec2) {
	b := &s.Ball
	vn := b.Vel.Dot(n)
	vt := b.Vel.Sub(n.Scale(vn)).Scale(s.Cfg.TangentialFriction)
	b.Vel = vt.Sub(n.Scale(vn * s.Cfg.Restitution))
}

// ageImpacts decrements flash lifetimes and drops expired ones.
func (s *State) ageImpacts(dt float64) {
	alive := s.Impacts[:0]
	for _, im := range s.Impacts {
		im.Life -= dt
		if im.Life > 0 {
			alive = append(alive, im)
		}
	}
	s.Impacts = alive
}
