package calibration

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agbru/armcalc/internal/bench"
	"github.com/agbru/armcalc/internal/ui"
)

// steppingClock advances by step on every reading, so each timed run
// measures exactly step.
func steppingClock(step time.Duration) bench.Clock {
	var mu sync.Mutex
	now := time.Unix(0, 0)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}

func TestCalibrateRepeat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		target     time.Duration
		maxRepeat  int
		wantRepeat int
		wantSteps  int
		wantCapped bool
	}{
		{"reaches target", 10 * time.Microsecond, 1000, 16, 5, false},
		{"first step suffices", time.Microsecond, 1000, 1, 1, false},
		{"capped", time.Second, 20, 20, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := bench.NewWithClock(steppingClock(time.Microsecond))
			res, err := CalibrateRepeat(context.Background(), h, 153, tt.target, tt.maxRepeat)
			if err != nil {
				t.Fatalf("CalibrateRepeat() error = %v", err)
			}
			if res.Repeat != tt.wantRepeat || len(res.Steps) != tt.wantSteps || res.Capped != tt.wantCapped {
				t.Errorf("got repeat=%d steps=%d capped=%v, want %d %d %v",
					res.Repeat, len(res.Steps), res.Capped, tt.wantRepeat, tt.wantSteps, tt.wantCapped)
			}
			for i := 1; i < len(res.Steps); i++ {
				if res.Steps[i].Repeat <= res.Steps[i-1].Repeat {
					t.Errorf("steps not increasing: %+v", res.Steps)
				}
			}
		})
	}
}

func TestCalibrateRepeat_Errors(t *testing.T) {
	t.Parallel()
	h := bench.New()
	if _, err := CalibrateRepeat(context.Background(), h, 0, time.Millisecond, 10); err == nil {
		t.Error("zero candidate accepted")
	}
	if _, err := CalibrateRepeat(context.Background(), h, 153, 0, 10); err == nil {
		t.Error("zero target accepted")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CalibrateRepeat(ctx, h, 153, time.Second, 10); err == nil {
		t.Error("canceled context ignored")
	}
}

func TestProfileSaveLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profile.json")
	res := Result{Repeat: 64, Steps: []Step{{Repeat: 64, Mean: time.Microsecond, Total: 64 * time.Microsecond}}}
	original := NewProfile(res, 153, 2*time.Millisecond)

	if err := original.SaveProfile(path); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	loaded, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if loaded.Repeat != 64 || loaded.Candidate != 153 || len(loaded.Steps) != 1 {
		t.Errorf("loaded = %+v", loaded)
	}
	if !loaded.IsValid(2 * time.Millisecond) {
		t.Error("freshly saved profile is not valid")
	}
	if loaded.IsValid(time.Millisecond) {
		t.Error("profile valid for a different target")
	}
	if loaded.IsStale(time.Hour) {
		t.Error("fresh profile reported stale")
	}
}

func TestProfileValidity(t *testing.T) {
	t.Parallel()
	var nilProfile *Profile
	if nilProfile.IsValid(time.Millisecond) || !nilProfile.IsStale(time.Hour) {
		t.Error("nil profile must be invalid and stale")
	}
	p := NewProfile(Result{Repeat: 8}, 153, time.Millisecond)
	p.NumCPU = runtime.NumCPU() + 1
	if p.IsValid(time.Millisecond) {
		t.Error("profile from other hardware accepted")
	}
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing profile loaded")
	}
}

func TestPrintResult(t *testing.T) {
	prev := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
	ui.SetCurrentTheme(ui.NoColorTheme)

	var buf bytes.Buffer
	PrintResult(&buf, Result{Repeat: 2, Steps: []Step{
		{Repeat: 1, Mean: time.Microsecond, Total: time.Microsecond},
		{Repeat: 2, Mean: time.Microsecond, Total: 2 * time.Microsecond},
	}})
	out := buf.String()
	for _, want := range []string{"Repeat Calibration", "(chosen)", "Auto-repeat: 2 runs per variant"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
