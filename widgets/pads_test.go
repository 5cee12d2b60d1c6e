package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFaderBar(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "----"},
		{1, "####"},
		{0.5, "##--"},
		{-3, "----"},
		{7, "####"},
	}
	for _, tt := range tests {
		if got := FaderBar(tt.value, 4, '#', '-'); got != tt.want {
			t.Errorf("FaderBar(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPadGridUsesGlyphs(t *testing.T) {
	g := Glyphs{On: 'x', Off: 'o'}
	rows := make([][]Pad, 8)
	for i := range rows {
		rows[i] = make([]Pad, 8)
		rows[i][i] = Pad{Color: lipgloss.Color("#ff0000"), Lit: true}
	}
	side := make([]Pad, 8)
	side[0].Lit = true

	lines := strings.Split(PadGrid(rows, side, g), "\n")
	if len(lines) != 8 {
		t.Fatalf("Expected 8 lines, got %d", len(lines))
	}
	for i, line := range lines {
		wantLit := 1
		if i == 0 {
			wantLit = 2
		}
		if n := strings.Count(line, "x"); n != wantLit {
			t.Errorf("line %d: expected %d lit pads, got %d", i, wantLit, n)
		}
		if n := strings.Count(line, "x") + strings.Count(line, "o"); n != 9 {
			t.Errorf("line %d: expected 9 pads, got %d", i, n)
		}
	}
}

func TestPadGridWithoutSide(t *testing.T) {
	rows := [][]Pad{{{}, {}}}
	if got := PadGrid(rows, nil, Glyphs{On: 'x', Off: 'o'}); strings.Count(got, "o") != 2 {
		t.Errorf("Expected two unlit pads, got %q", got)
	}
}

func TestKeyHelp(t *testing.T) {
	got := KeyHelp([]KeyBinding{{"+/-", "tempo"}, {"q", "quit"}})
	if got != "+/-:tempo  q:quit" {
		t.Errorf("Expected joined bindings, got %q", got)
	}
}
