package widget

// Trace records the last N position frames of a wave into a ring buffer so a
// renderer can draw trails from recent motion.
type Trace struct {
	frames    [][]float64
	nextIndex int
	filled    int
}

func NewTrace(size int) *Trace {
	if size < 1 {
		size = 1
	}
	return &Trace{frames: make([][]float64, size)}
}

// Record stores a copy of positions as the newest frame.
func (t *Trace) Record(positions []float64) {
	buf := t.frames[t.nextIndex]
	if cap(buf) < len(positions) {
		buf = make([]float64, len(positions))
	}
	buf = buf[:len(positions)]
	copy(buf, positions)
	t.frames[t.nextIndex] = buf

	t.nextIndex++
	if t.nextIndex >= len(t.frames) {
		t.nextIndex = 0
	}
	if t.filled < len(t.frames) {
		t.filled++
	}
}

// Len returns the number of recorded frames, at most the ring size.
func (t *Trace) Len() int { return t.filled }

// Reset drops every recorded frame.
func (t *Trace) Reset() {
	t.nextIndex = 0
	t.filled = 0
}

// Snapshot returns up to the last n frames, oldest first. The returned
// frames are copies.
func (t *Trace) Snapshot(n int) [][]float64 {
	if n > t.filled {
		n = t.filled
	}
	if n <= 0 {
		return nil
	}
	out := make([][]float64, n)
	// Walk backwards from nextIndex - 1, filling from the end.
	idx := t.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(t.frames) - 1
		}
		out[i] = append([]float64(nil), t.frames[idx]...)
		idx--
	}
	return out
}
