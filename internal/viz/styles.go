// Package viz holds the terminal styling for the editor: lipgloss styles,
// the opacity shade ramp used to draw cells, and color helpers.
package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	Cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	White   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// shadeRamp maps increasing opacity to increasingly solid block characters.
var shadeRamp = []rune{' ', '░', '░', '▒', '▒', '▓', '▓', '█'}

// Shade returns the block character for an opacity in [0, 1].
func Shade(opacity float64) rune {
	if opacity <= 0 {
		return shadeRamp[0]
	}
	idx := int(opacity * float64(len(shadeRamp)))
	if idx >= len(shadeRamp) {
		idx = len(shadeRamp) - 1
	}
	return shadeRamp[idx]
}

// CellStyle renders in the overlay's fill color, dimmed toward the terminal
// background as opacity drops.
func CellStyle(hex string, opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(scaleHex(hex, opacity)))
}

// MaskedDim is the fixed low-intensity style for masked cells while mask
// mode is active.
var MaskedDim = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

// scaleHex multiplies each channel of a #rrggbb color by f, clamped to [0,1].
func scaleHex(hex string, f float64) string {
	r, g, b := parseHex(hex)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return fmt.Sprintf("#%02x%02x%02x",
		int(float64(r)*f), int(float64(g)*f), int(float64(b)*f))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
