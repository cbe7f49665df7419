package sim

import (
	"image/color"
	"testing"
)

func TestPaletteCycleWraps(t *testing.T) {
	p := NewPalette()

	if len(p) != 6 {
		t.Fatalf("Expected 6 palette entries, got %d", len(p))
	}

	idx := 0
	for i := 0; i < len(p); i++ {
		idx = p.Cycle(idx)
	}
	if idx != 0 {
		t.Errorf("Expected cycle to wrap back to 0, got %d", idx)
	}
}

func TestPaletteStartsRed(t *testing.T) {
	p := NewPalette()

	want := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	if got := p.RGBA(0); got != want {
		t.Errorf("Expected first entry %v, got %v", want, got)
	}
}

func TestPaletteFade(t *testing.T) {
	p := NewPalette()

	if got := p.Faded(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected fully faded color to be black, got %v", got)
	}
	if got := p.Faded(0, 1); got != p.RGBA(0) {
		t.Errorf("Expected unfaded color %v, got %v", p.RGBA(0), got)
	}

	// out-of-range t clamps rather than over/undershooting
	if got := p.Faded(0, 2); got != p.RGBA(0) {
		t.Errorf("Expected t > 1 to clamp to full color, got %v", got)
	}
	if got := p.Faded(0, -1); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected t < 0 to clamp to black, got %v", got)
	}
}
