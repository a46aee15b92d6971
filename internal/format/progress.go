package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates produced early in a run.
const maxETA = 24 * time.Hour

// ProgressBar renders a bar of the given length using full and light shade
// blocks. Progress is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// ETAEstimator derives a remaining-time estimate from the elapsed time and
// the completed fraction of a run.
type ETAEstimator struct {
	start time.Time
	now   func() time.Time
}

// NewETAEstimator starts an estimator now.
func NewETAEstimator() *ETAEstimator {
	return NewETAEstimatorWithClock(time.Now)
}

// NewETAEstimatorWithClock starts an estimator on a custom clock.
func NewETAEstimatorWithClock(now func() time.Time) *ETAEstimator {
	return &ETAEstimator{start: now(), now: now}
}

// Estimate returns the remaining time assuming a constant rate. It returns
// 0 when there is not enough data (no progress yet) or the run is complete.
func (e *ETAEstimator) Estimate(fraction float64) time.Duration {
	if fraction <= 0 || fraction >= 1 {
		return 0
	}
	elapsed := e.now().Sub(e.start)
	remaining := float64(elapsed) * (1 - fraction) / fraction
	if remaining > float64(maxETA) {
		return maxETA
	}
	return time.Duration(remaining)
}

// Elapsed returns the time since the estimator started.
func (e *ETAEstimator) Elapsed() time.Duration {
	return e.now().Sub(e.start)
}

// FormatETA renders an estimate compactly ("45s", "2m30s", "1h15m").
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatProgressBarWithETA renders "[bar] 42.0% ETA: 3s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
