package theme

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type RGB [3]uint8

// ErrEmptyPalette is returned for a GPL file with no colour lines
var ErrEmptyPalette = errors.New("palette has no colors")

// Palette is an ordered colour ramp. The TUI samples it by position for
// role colours and for LED codes missing from the hardware table.
type Palette struct {
	Name   string
	Colors []RGB
}

// LoadGPL reads a GIMP palette file
func LoadGPL(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ParseGPL(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseGPL reads GIMP palette text: an optional header (GIMP Palette,
// Name:, Columns:), # comments, then one "R G B [label]" line per colour.
func ParseGPL(r io.Reader) (*Palette, error) {
	p := &Palette{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "", strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, "GIMP"), strings.HasPrefix(line, "Columns:"):
		case strings.HasPrefix(line, "Name:"):
			p.Name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
		default:
			if c, ok := parseRGB(line); ok {
				p.Colors = append(p.Colors, c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(p.Colors) == 0 {
		return nil, ErrEmptyPalette
	}
	return p, nil
}

func parseRGB(line string) (RGB, bool) {
	var r, g, b int
	if _, err := fmt.Sscan(line, &r, &g, &b); err != nil {
		return RGB{}, false
	}
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return RGB{}, false
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, true
}

// Sample returns the ramp colour at pos in [0,1], blending neighbours
func (p *Palette) Sample(pos float64) RGB {
	last := len(p.Colors) - 1
	switch {
	case pos <= 0 || last == 0:
		return p.Colors[0]
	case pos >= 1:
		return p.Colors[last]
	}

	x := pos * float64(last)
	i := int(x)
	t := x - float64(i)
	var out RGB
	for ch := range out {
		a, b := float64(p.Colors[i][ch]), float64(p.Colors[i+1][ch])
		out[ch] = uint8(a + (b-a)*t)
	}
	return out
}
