package ui

// Color helpers read the active theme on every call so a theme switch
// takes effect immediately.

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color, used for the iterative series.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorOrange returns the secondary color, used for the recursive series.
func ColorOrange() string { return GetCurrentTheme().Secondary }

// ColorMagenta returns the info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ErrorColors adapts the active theme to apperrors.ColorProvider.
type ErrorColors struct{}

func (ErrorColors) Yellow() string { return ColorYellow() }
func (ErrorColors) Red() string    { return ColorRed() }
func (ErrorColors) Reset() string  { return ColorReset() }
