package search

// Hits is a lazy, finite, restartable stream of match offsets. Restarting
// re-runs the scan or re-queries the cached index; it never mutates state
// shared with other consumers.
type Hits struct {
	restart func() func() (int, bool)
	step    func() (int, bool)
}

func newHits(restart func() func() (int, bool)) *Hits {
	return &Hits{restart: restart, step: restart()}
}

// Next returns the next match offset, or false when the stream is
// exhausted.
func (h *Hits) Next() (int, bool) {
	return h.step()
}

// Reset rewinds the stream to its first match.
func (h *Hits) Reset() {
	h.step = h.restart()
}

// Collect drains the remaining matches into a slice.
func (h *Hits) Collect() []int {
	out := []int{}
	for {
		pos, ok := h.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
	}
}
