package theme

import "github.com/charmbracelet/lipgloss"

// APC mini mk2 pad palette, approximate RGB for the velocities we send
var ledColors = map[uint8]RGB{
	0:  {0, 0, 0},
	3:  {255, 255, 255},
	5:  {255, 0, 0},
	13: {180, 255, 0},
	21: {0, 255, 80},
	32: {0, 220, 255},
	37: {0, 140, 255},
	45: {40, 60, 255},
	53: {255, 40, 200},
	56: {255, 120, 170},
	60: {255, 80, 0},
}

// LEDColor returns the RGB a pad shows for a velocity code. Codes outside
// the table are sampled from the theme palette at code/127.
func (t *Theme) LEDColor(code uint8) RGB {
	if c, ok := ledColors[code]; ok {
		return c
	}
	return t.Palette.Sample(float64(code) / 127)
}

// LED is LEDColor as a lipgloss colour
func (t *Theme) LED(code uint8) lipgloss.Color {
	return rgbToLipgloss(t.LEDColor(code))
}

// DefaultPalette is the built-in plasma ramp used when no GPL file is given
func DefaultPalette() *Palette {
	return &Palette{
		Name: "plasma",
		Colors: []RGB{
			{13, 8, 135},
			{84, 2, 163},
			{139, 10, 165},
			{185, 50, 137},
			{219, 92, 104},
			{244, 136, 73},
			{254, 188, 43},
			{240, 249, 33},
		},
	}
}
