package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette entries adapt to the active theme through
// lipgloss.SetHasDarkBackground.
var (
	colorTitle     = lipgloss.AdaptiveColor{Light: "25", Dark: "86"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "161", Dark: "205"}
	colorHours     = lipgloss.AdaptiveColor{Light: "236", Dark: "252"}
	colorMinutes   = lipgloss.AdaptiveColor{Light: "239", Dark: "248"}
	colorSeconds   = lipgloss.AdaptiveColor{Light: "242", Dark: "244"}
	colorSeparator = lipgloss.AdaptiveColor{Light: "245", Dark: "240"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "244", Dark: "241"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "250", Dark: "62"}
	colorBar       = lipgloss.AdaptiveColor{Light: "254", Dark: "235"}
	colorBarText   = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	colorError     = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
)

// glyphs is a 3x5 block font for the fullscreen clock
var glyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// bigText renders digits and colons in the block font
func bigText(s string) string {
	var rows [5]strings.Builder
	for i, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(g[row])
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
