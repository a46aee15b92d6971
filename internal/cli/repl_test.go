package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/bench"
	"github.com/agbru/armcalc/internal/logging"
	"github.com/agbru/armcalc/internal/orchestration"
)

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

func newTestREPL(t *testing.T, input string, cfg REPLConfig) (*REPL, *bytes.Buffer) {
	t.Helper()
	o, err := orchestration.New(
		orchestration.WithHarness(bench.NewWithClock(steppingClock(time.Microsecond))),
		orchestration.WithFactory(armstrong.NewDefaultFactory()),
		orchestration.WithLogger(logging.NewStdLoggerAdapter(log.New(io.Discard, "", 0))),
	)
	if err != nil {
		t.Fatalf("orchestration.New() error = %v", err)
	}
	if cfg.Repeat == 0 {
		cfg.Repeat = 3
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Minute
	}
	r := NewREPL(o, nil, cfg)
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.SetProgressReporter(orchestration.NullProgressReporter{})
	return r, &out
}

func TestREPL_RunsGrowHistory(t *testing.T) {
	r, out := newTestREPL(t, "run 153\n9474 5\nhistory\nexit\n", REPLConfig{})
	r.Start(context.Background())

	history := r.Session().History()
	if len(history) != 2 {
		t.Fatalf("history has %d runs, want 2", len(history))
	}
	if history[0].Candidate != 153 || history[0].Repeat != 3 {
		t.Errorf("first run = %+v, want 153 with the default repeat", history[0])
	}
	if history[1].Candidate != 9474 || history[1].Repeat != 5 {
		t.Errorf("second run = %+v, want 9474 repeated 5 times", history[1])
	}
	if !strings.Contains(out.String(), "runs 1..2") {
		t.Errorf("history chart not printed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("exit not acknowledged")
	}
}

func TestREPL_InvalidInput(t *testing.T) {
	r, out := newTestREPL(t, "run 0\nrun 12abc\nrun 153 -1\n", REPLConfig{})
	r.Start(context.Background())

	if n := r.Session().Len(); n != 0 {
		t.Errorf("session has %d runs after invalid input only", n)
	}
	if got := strings.Count(out.String(), "invalid input"); got != 3 {
		t.Errorf("invalid input reported %d times, want 3:\n%s", got, out.String())
	}
}

func TestREPL_RepeatAndUnknownCommands(t *testing.T) {
	r, out := newTestREPL(t, "repeat 7\nrepeat zero\nfrobnicate\nrun 370\n", REPLConfig{})
	r.Start(context.Background())

	last, ok := r.Session().Last()
	if !ok || last.Repeat != 7 {
		t.Errorf("last run = %+v, want repeat 7", last)
	}
	for _, want := range []string{"Repeat count set to 7", "Invalid repeat count: zero", "Unknown command: frobnicate"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestREPL_ReferenceAndExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	input := "run 153\nreference\nexport " + path + "\n"
	r, out := newTestREPL(t, input, REPLConfig{ReferenceSet: armstrong.ReferenceCanonical})
	r.Start(context.Background())

	if got := len(r.LastReference()); got != len(armstrong.ReferenceSet()) {
		t.Errorf("reference batch has %d timings, want %d", got, len(armstrong.ReferenceSet()))
	}
	if !strings.Contains(out.String(), "Session saved to") {
		t.Errorf("export not confirmed:\n%s", out.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export file: %v", err)
	}
	if !strings.Contains(string(data), `"candidate": 153`) {
		t.Errorf("export does not contain the run:\n%s", data)
	}
}

func TestREPL_RunWithReferenceTable(t *testing.T) {
	table := armstrong.ReferenceSet()[:2]
	r, out := newTestREPL(t, "153\n", REPLConfig{Reference: table})
	r.Start(context.Background())

	if got := len(r.LastReference()); got != 2 {
		t.Errorf("reference timings = %d, want 2", got)
	}
	if !strings.Contains(out.String(), "Reference Armstrong Numbers") {
		t.Errorf("trend not presented:\n%s", out.String())
	}
}

func TestREPL_CanceledContext(t *testing.T) {
	r, out := newTestREPL(t, "run 153\n", REPLConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Start(ctx)
	if r.Session().Len() != 0 {
		t.Errorf("command ran after cancellation")
	}
	if strings.Contains(out.String(), "armstrong>") {
		t.Errorf("prompt printed after cancellation")
	}
}
