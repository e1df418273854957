// Package cli provides shared formatting helpers for nexctl output.
package cli

import (
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Green renders s in green. Honors NO_COLOR and non-tty output.
func Green(s string) string { return green(s) }

// Yellow renders s in yellow.
func Yellow(s string) string { return yellow(s) }

// Red renders s in red.
func Red(s string) string { return red(s) }

// Bold renders s in bold.
func Bold(s string) string { return bold(s) }

// Dim renders s dimmed.
func Dim(s string) string { return dim(s) }

// DotPad pads name with dots to the given width.
// Example: DotPad("n9k-leaf-01", 30) → "n9k-leaf-01 .................."
func DotPad(name string, width int) string {
	if width <= 0 || len(name) >= width-1 {
		return name
	}
	dots := width - len(name) - 1
	return name + " " + strings.Repeat(".", dots)
}

// Status colors a reconciliation outcome the way runners report task state:
// changed green, would-change yellow, no-op dimmed.
func Status(changed, wouldChange bool) string {
	switch {
	case changed:
		return Green("changed")
	case wouldChange:
		return Yellow("would change")
	default:
		return Dim("ok")
	}
}
