package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/rebound/internal/render"
)

const (
	arenaStrokeWidth  = 2
	trailStrokeWidth  = 2
	impactStrokeWidth = 2

	// trail segments fade from invisible (oldest) up to this fraction
	// of full brightness (newest)
	trailMaxBrightness = 0.7
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	arenaColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Draw renders one frame: background, arena boundary, impact flashes,
// motion trail, ball, and a status line.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	s := g.State
	g.Renderer.StrokeCircle(screen,
		float32(s.Arena.Center.X),
		float32(s.Arena.Center.Y),
		float32(s.Arena.Radius),
		arenaStrokeWidth,
		arenaColor)

	g.drawImpacts(screen)
	g.drawTrail(screen)

	g.Renderer.FillCircle(screen,
		float32(s.Ball.Pos.X),
		float32(s.Ball.Pos.Y),
		float32(s.Ball.Radius),
		s.Palette.RGBA(s.Ball.ColorIdx))

	g.Renderer.DrawText(screen, fmt.Sprintf("bounces: %d", s.Bounces), 8, 8)
}

// drawTrail draws the motion trail as line segments, oldest dimmest.
func (g *Game) drawTrail(screen render.Image) {
	s := g.State
	pts := s.Trail.Positions()
	for i := 1; i < len(pts); i++ {
		fade := float64(i) / float64(len(pts)) * trailMaxBrightness
		clr := s.Palette.Faded(s.Ball.ColorIdx, fade)
		g.Renderer.StrokeLine(screen,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y),
			trailStrokeWidth,
			clr)
	}
}

// drawImpacts draws a fading line from each live impact point to the
// ball, in the color the ball had when it hit.
func (g *Game) drawImpacts(screen render.Image) {
	s := g.State
	for _, im := range s.Impacts {
		t := im.Life / s.Cfg.ImpactLifetime
		clr := s.Palette.Faded(im.ColorIdx, t)
		g.Renderer.StrokeLine(screen,
			float32(im.Pos.X), float32(im.Pos.Y),
			float32(s.Ball.Pos.X), float32(s.Ball.Pos.Y),
			impactStrokeWidth,
			clr)
	}
}
