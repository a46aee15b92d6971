// Package logging provides the logging facade used across armcalc.
// Components depend on the Logger interface; the default backend is zerolog,
// with a standard-library adapter for callers that already own a *log.Logger.
package logging
