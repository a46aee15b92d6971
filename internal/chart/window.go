package chart

// Window keeps the most recent samples of a series, up to a fixed size.
// Sparklines are drawn from it so that a long-running dashboard does not
// grow without bound.
type Window struct {
	size    int
	samples []float64
}

// NewWindow returns a Window holding at most size samples (at least 1).
func NewWindow(size int) *Window {
	return &Window{size: max(size, 1)}
}

// Push appends v and drops the oldest sample once the window is full.
func (w *Window) Push(v float64) {
	if len(w.samples) == w.size {
		copy(w.samples, w.samples[1:])
		w.samples[len(w.samples)-1] = v
		return
	}
	w.samples = append(w.samples, v)
}

// Len returns the number of samples held.
func (w *Window) Len() int { return len(w.samples) }

// Last returns the newest sample, or 0 when empty.
func (w *Window) Last() float64 {
	if len(w.samples) == 0 {
		return 0
	}
	return w.samples[len(w.samples)-1]
}

// Values returns a copy of the samples, oldest first.
func (w *Window) Values() []float64 {
	if len(w.samples) == 0 {
		return nil
	}
	return append([]float64(nil), w.samples...)
}

// Reset drops every sample.
func (w *Window) Reset() { w.samples = w.samples[:0] }
