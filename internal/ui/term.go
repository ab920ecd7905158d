package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Free slots: green
	colorFree = color.New(color.FgGreen)

	// Partially booked: yellow
	colorPartial = color.New(color.FgYellow)

	// Busy: red
	colorBusy = color.New(color.FgRed)

	// Closed hours: dim/grey
	colorClosed = color.New(color.FgWhite, color.Faint)

	// Pending approvals: magenta to make them pop
	colorPending = color.New(color.FgMagenta)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatFree formats text for free availability.
func formatFree(s string) string {
	return colorFree.Sprint(s)
}

// formatPartial formats text for partially booked availability.
func formatPartial(s string) string {
	return colorPartial.Sprint(s)
}

// formatBusy formats text for busy availability.
func formatBusy(s string) string {
	return colorBusy.Sprint(s)
}

// formatClosed formats text for closed hours.
func formatClosed(s string) string {
	return colorClosed.Sprint(s)
}

// formatPending formats text for pending approvals.
func formatPending(s string) string {
	return colorPending.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
