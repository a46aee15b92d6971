// Package progress carries progress notifications from the orchestration
// layer to whichever front end is watching (spinner, TUI, logs).
package progress

import "fmt"

// Update reports that Step of Total timing stages has completed.
type Update struct {
	// Stage describes the stage that just finished, e.g. "iterative" or
	// "reference 9474 recursive".
	Stage string
	// Step is the number of completed stages (1-based).
	Step int
	// Total is the number of stages in the run.
	Total int
}

// Value returns the normalized progress in [0, 1].
func (u Update) Value() float64 {
	if u.Total <= 0 {
		return 0
	}
	v := float64(u.Step) / float64(u.Total)
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// String renders the update as "stage (step/total)".
func (u Update) String() string {
	return fmt.Sprintf("%s (%d/%d)", u.Stage, u.Step, u.Total)
}

// Callback receives progress updates.
type Callback func(Update)

// Tracker numbers the stages of one run and forwards them to a Callback.
// A nil Tracker or a Tracker without callback is a no-op.
type Tracker struct {
	total    int
	step     int
	callback Callback
}

// NewTracker returns a tracker for total stages.
func NewTracker(total int, callback Callback) *Tracker {
	return &Tracker{total: total, callback: callback}
}

// Done marks one more stage as completed.
func (t *Tracker) Done(stage string) {
	if t == nil {
		return
	}
	t.step++
	if t.callback != nil {
		t.callback(Update{Stage: stage, Step: t.step, Total: t.total})
	}
}

// ChannelCallback returns a Callback that forwards updates to ch without
// blocking: when the buffer is full the update is dropped, since a newer
// one will follow. A nil channel yields a no-op callback.
func ChannelCallback(ch chan<- Update) Callback {
	if ch == nil {
		return func(Update) {}
	}
	return func(u Update) {
		select {
		case ch <- u:
		default:
		}
	}
}
