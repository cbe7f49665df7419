package sim

import "testing"

func TestTrailKeepsInsertionOrder(t *testing.T) {
	trail := NewTrail(5)

	trail.Push(Vec2{X: 1})
	trail.Push(Vec2{X: 2})
	trail.Push(Vec2{X: 3})

	if trail.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", trail.Len())
	}

	pts := trail.Positions()
	for i, want := range []float64{1, 2, 3} {
		if pts[i].X != want {
			t.Errorf("Position %d: expected x %f, got %f", i, want, pts[i].X)
		}
	}
}

func TestTrailEvictsOldestFirst(t *testing.T) {
	trail := NewTrail(3)

	for i := 1; i <= 5; i++ {
		trail.Push(Vec2{X: float64(i)})
	}

	if trail.Len() != trail.Cap() {
		t.Fatalf("Expected length %d at capacity, got %d", trail.Cap(), trail.Len())
	}

	pts := trail.Positions()
	for i, want := range []float64{3, 4, 5} {
		if pts[i].X != want {
			t.Errorf("Position %d: expected x %f, got %f", i, want, pts[i].X)
		}
	}
}

func TestTrailNeverExceedsCapacity(t *testing.T) {
	trail := NewTrail(4)

	for i := 0; i < 100; i++ {
		trail.Push(Vec2{X: float64(i)})
		if trail.Len() > trail.Cap() {
			t.Fatalf("Push %d: length %d exceeds capacity %d", i, trail.Len(), trail.Cap())
		}
	}
}

func TestZeroCapacityTrail(t *testing.T) {
	trail := NewTrail(0)
	trail.Push(Vec2{X: 1})

	if trail.Len() != 0 {
		t.Errorf("Expected empty trail, got length %d", trail.Len())
	}
	if pts := trail.Positions(); len(pts) != 0 {
		t.Errorf("Expected no positions, got %d", len(pts))
	}
}
