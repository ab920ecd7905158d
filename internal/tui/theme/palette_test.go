package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_StatusShades(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Free:        "#22aa44",
		Partial:     "#ccaa22",
		Busy:        "#cc2244",
		Closed:      "#555566",
		Pending:     "#9955cc",
		Warning:     "#cc7722",
	}

	palette := NewPalette(base)

	if palette.FreeBg != lipgloss.Color(darkenColor(base.Free)) {
		t.Fatalf("FreeBg = %q, want %q", palette.FreeBg, darkenColor(base.Free))
	}
	if palette.BusyBg != lipgloss.Color(darkenColor(base.Busy)) {
		t.Fatalf("BusyBg = %q, want %q", palette.BusyBg, darkenColor(base.Busy))
	}
	if palette.ClosedBg != lipgloss.Color(muteColor(base.Closed)) {
		t.Fatalf("ClosedBg = %q, want %q", palette.ClosedBg, muteColor(base.Closed))
	}
}

func TestNewPalette_NilFallsBackToFrappe(t *testing.T) {
	palette := NewPalette(nil)
	frappe, _ := Load("frappe")
	if palette.Bg != lipgloss.Color(frappe.Bg) {
		t.Fatalf("Bg = %q, want %q", palette.Bg, frappe.Bg)
	}
}

func TestNewPalette_LightThemeInvertsShades(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Free:        "#2f8f2f",
		Partial:     "#c97b00",
		Busy:        "#c2182c",
		Closed:      "#999999",
		Pending:     "#8839ef",
		Warning:     "#c2410c",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.FreeBg)) <= relativeLuminance(base.Free) {
		t.Fatalf("FreeBg luminance = %f, want greater than Free", relativeLuminance(string(palette.FreeBg)))
	}
	if relativeLuminance(string(palette.BusyBg)) <= relativeLuminance(base.Busy) {
		t.Fatalf("BusyBg luminance = %f, want greater than Busy", relativeLuminance(string(palette.BusyBg)))
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
