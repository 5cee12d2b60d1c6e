package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pad is one controller LED as drawn in the terminal
type Pad struct {
	Color lipgloss.Color
	Lit   bool
}

// Glyphs are the runes drawn for lit and unlit pads
type Glyphs struct {
	On, Off rune
}

func (g Glyphs) render(p Pad) string {
	r := g.Off
	if p.Lit {
		r = g.On
	}
	return lipgloss.NewStyle().Foreground(p.Color).Render(string(r))
}

// PadGrid draws rows top first. side, if given, is the page button column
// to the right of the grid, side[0] level with rows[0].
func PadGrid(rows [][]Pad, side []Pad, g Glyphs) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, p := range row {
			cells[j] = g.render(p)
		}
		line := strings.Join(cells, " ")
		if i < len(side) {
			line += "  " + g.render(side[i])
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// FaderBar renders a 0-1 value as a bar of width cells
func FaderBar(value float64, width int, on, off rune) string {
	value = max(0, min(1, value))
	filled := int(value*float64(width) + 0.5)
	return strings.Repeat(string(on), filled) + strings.Repeat(string(off), width-filled)
}

// KeyBinding is a single key and what it does
type KeyBinding struct {
	Key  string
	Desc string
}

// KeyHelp formats bindings as a one-line footer, "key:desc" pairs
func KeyHelp(keys []KeyBinding) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.Key + ":" + k.Desc
	}
	return strings.Join(parts, "  ")
}
