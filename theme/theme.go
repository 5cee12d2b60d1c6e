package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Pad      rune // ■ lit pad
	PadOff   rune // □ unlit pad
	FaderOn  rune // █ filled fader segment
	FaderOff rune // ░ empty fader segment
}

func New(palette *Palette) *Theme {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Pad:      '■',
			PadOff:   '□',
			FaderOn:  '█',
			FaderOff: '░',
		},
	}
}

// Palette positions of the TUI text roles
const (
	RoleMuted  = 0.2
	RoleFG     = 0.4
	RoleAccent = 0.5
	RoleActive = 0.7
)

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Sample(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Sample(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Sample(RoleMuted))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Sample(RoleActive))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(Hex(c))
}

// Hex formats a colour as #rrggbb
func Hex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
