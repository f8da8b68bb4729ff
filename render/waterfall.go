package render

// History holds recent normalized traces, newest first, up to a fixed
// capacity. Pushing onto a full history evicts the oldest trace.
type History struct {
	traces   [][]float64
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{capacity: capacity}
}

func (h *History) Len() int { return len(h.traces) }

func (h *History) Cap() int { return h.capacity }

// At returns the i-th newest trace, or nil past the end.
func (h *History) At(i int) []float64 {
	if i < 0 || i >= len(h.traces) {
		return nil
	}
	return h.traces[i]
}

func (h *History) Push(trace []float64) {
	if h.capacity == 0 {
		return
	}
	if len(h.traces) < h.capacity {
		h.traces = append(h.traces, nil)
	}
	copy(h.traces[1:], h.traces)
	h.traces[0] = trace
}

// Resize rebounds the history, dropping the oldest overflow when shrinking.
func (h *History) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	h.capacity = capacity
	if len(h.traces) > capacity {
		h.traces = h.traces[:capacity]
	}
}
