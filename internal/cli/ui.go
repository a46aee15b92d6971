package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/armcalc/internal/format"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/progress"
)

const (
	// ProgressRefreshRate is the spinner and progress bar refresh period.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in cells of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with the current stage, a progress bar
// and an ETA until progressChan is closed, then prints a final 100% line.
// It must run in its own goroutine; wg.Done is called on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer) {
	defer wg.Done()

	eta := format.NewETAEstimator()
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last progress.Update
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				stopped = true
				if last.Total > 0 {
					fmt.Fprintf(out, "Progress: %6.2f%% [%s] %s\n",
						100.0, format.ProgressBar(1, ProgressBarWidth), format.FormatExecutionDuration(eta.Elapsed()))
				}
				return
			}
			last = update
		case <-ticker.C:
			if last.Total == 0 {
				continue
			}
			v := last.Value()
			s.UpdateSuffix(fmt.Sprintf(" %s %s",
				format.FormatProgressBarWithETA(v, eta.Estimate(v), ProgressBarWidth), last.Stage))
		}
	}
}

// CLIProgressReporter renders progress with DisplayProgress.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress implements orchestration.ProgressReporter.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer) {
	DisplayProgress(wg, progressChan, out)
}
