package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSampleEndpoints(t *testing.T) {
	p := DefaultPalette()
	if got := p.Sample(-1); got != p.Colors[0] {
		t.Errorf("Expected first colour, got %v", got)
	}
	if got := p.Sample(2); got != p.Colors[len(p.Colors)-1] {
		t.Errorf("Expected last colour, got %v", got)
	}
}

func TestSampleInterpolates(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {200, 100, 50}}}
	if got := p.Sample(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected midpoint, got %v", got)
	}
}

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gpl")
	body := "GIMP Palette\nName: test\nColumns: 2\n# comment\n255 0 0 red\n0 0 255\tblue\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadGPL(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "test" || len(p.Colors) != 2 {
		t.Fatalf("Expected 2 colours named test, got %+v", p)
	}
	if p.Colors[1] != (RGB{0, 0, 255}) {
		t.Errorf("Expected blue, got %v", p.Colors[1])
	}
}

func TestLoadGPLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gpl")
	os.WriteFile(path, []byte("GIMP Palette\n"), 0644)
	if _, err := LoadGPL(path); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Expected ErrEmptyPalette, got %v", err)
	}
}

func TestParseGPLSkipsBadLines(t *testing.T) {
	p, err := ParseGPL(strings.NewReader("GIMP Palette\n300 0 0 too bright\nnot a colour\n1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Colors) != 1 || p.Colors[0] != (RGB{1, 2, 3}) {
		t.Errorf("Expected only 1 2 3, got %v", p.Colors)
	}
}

func TestSampleSingleColour(t *testing.T) {
	p := &Palette{Colors: []RGB{{9, 9, 9}}}
	if got := p.Sample(0.5); got != (RGB{9, 9, 9}) {
		t.Errorf("Expected the only colour, got %v", got)
	}
}

func TestLEDColor(t *testing.T) {
	th := New(nil)
	if th.LEDColor(0) != (RGB{}) {
		t.Error("Expected off to be black")
	}
	if th.LEDColor(45) != (RGB{40, 60, 255}) {
		t.Error("Expected table colour for the random pad code")
	}
}

func TestLEDColorFallsBackToPalette(t *testing.T) {
	th := New(&Palette{Colors: []RGB{{0, 0, 0}, {254, 254, 254}}})
	if got := th.LEDColor(127); got != (RGB{254, 254, 254}) {
		t.Errorf("Expected top of ramp for code 127, got %v", got)
	}
	if got := th.LEDColor(1); got == (RGB{255, 255, 255}) {
		t.Errorf("Expected ramp sample, got %v", got)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(RGB{255, 16, 0}); got != "#ff1000" {
		t.Errorf("Expected #ff1000, got %s", got)
	}
}
