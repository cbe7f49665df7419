package sim

// Trail is a fixed-capacity ring buffer of recent ball positions.
// Once full, pushing a new position evicts the oldest one.
type Trail struct {
	buf  []Vec2
	next int
	size int
}

// NewTrail creates a trail that keeps at most capacity positions.
func NewTrail(capacity int) *Trail {
	return &Trail{buf: make([]Vec2, capacity)}
}

// Push appends a position, evicting the oldest if the trail is full.
func (t *Trail) Push(p Vec2) {
	if len(t.buf) == 0 {
		return
	}
	t.buf[t.next] = p
	t.next = (t.next + 1) % len(t.buf)
	if t.size < len(t.buf) {
		t.size++
	}
}

// Len returns the number of positions currently held.
func (t *Trail) Len() int {
	return t.size
}

// Cap returns the maximum number of positions the trail holds.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Positions returns the held positions in chronological order, oldest
// first. The returned slice is freshly allocated.
func (t *Trail) Positions() []Vec2 {
	out := make([]Vec2, 0, t.size)
	start := t.next - t.size
	if start < 0 {
		start += len(t.buf)
	}
	for i := 0; i < t.size; i++ {
		out = append(out, t.buf[(start+i)%len(t.buf)])
	}
	return out
}
