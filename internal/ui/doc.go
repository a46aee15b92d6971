// Package ui holds the color themes shared by the CLI presenter, the usage
// text and the TUI dashboard. It honors NO_COLOR and --no-color.
package ui
