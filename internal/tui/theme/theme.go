// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Grid cells, subtle highlight
	BgSelection string // Cursor, selection
	Fg          string // Primary foreground
	FgMuted     string // Closed days, muted elements
	Accent      string // Title, primary accent, borders
	Free        string // Rooms with no meetings
	Partial     string // Rooms with some meetings
	Busy        string // Rooms at or over the busy threshold
	Closed      string // Days outside working hours
	Pending     string // Unconfirmed meetings
	Warning     string // Warnings, edit mode
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// The Catppuccin flavors, keyed by name.
var builtins = map[string]Theme{
	"mocha": {
		Name:        "mocha",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Free:        "#a6e3a1",
		Partial:     "#f9e2af",
		Busy:        "#f38ba8",
		Closed:      "#6c7086",
		Pending:     "#cba6f7",
		Warning:     "#fab387",
	},
	"macchiato": {
		Name:        "macchiato",
		Bg:          "#24273a",
		BgHighlight: "#363a4f",
		BgSelection: "#494d64",
		Fg:          "#cad3f5",
		FgMuted:     "#6e738d",
		Accent:      "#8aadf4",
		Free:        "#a6da95",
		Partial:     "#eed49f",
		Busy:        "#ed8796",
		Closed:      "#6e738d",
		Pending:     "#c6a0f6",
		Warning:     "#f5a97f",
	},
	"frappe": {
		Name:        "frappe",
		Bg:          "#303446",
		BgHighlight: "#414559",
		BgSelection: "#51576d",
		Fg:          "#c6d0f5",
		FgMuted:     "#737994",
		Accent:      "#8caaee",
		Free:        "#a6d189",
		Partial:     "#e5c890",
		Busy:        "#e78284",
		Closed:      "#737994",
		Pending:     "#ca9ee6",
		Warning:     "#ef9f76",
	},
	"latte": {
		Name:        "latte",
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		BgSelection: "#bcc0cc",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Free:        "#40a02b",
		Partial:     "#df8e1d",
		Busy:        "#d20f39",
		Closed:      "#9ca0b0",
		Pending:     "#8839ef",
		Warning:     "#fe640b",
	},
}

// Load returns a theme by name.
// Falls back to frappe if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "frappe"
	}
	name = strings.ToLower(name)

	t, ok := builtins[name]
	if !ok {
		if name != "frappe" {
			return Load("frappe")
		}
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return &t, nil
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
