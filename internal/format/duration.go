// Package format holds the text formatting helpers shared by the CLI, the
// TUI and the HTTP layer.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// MillisDecimals is the number of decimals used when mean times are shown
// in milliseconds.
const MillisDecimals = 4

// FormatExecutionDuration formats a time.Duration for display. It shows
// nanoseconds below a microsecond, microseconds below a millisecond,
// milliseconds below a second and the default representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatMillis renders a millisecond value with MillisDecimals decimals,
// without unit (e.g. "0.0012").
func FormatMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'f', MillisDecimals, 64)
}
