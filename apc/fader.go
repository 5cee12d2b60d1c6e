package apc

import "fmt"

// FaderMode decides what a latched fader button does to its channel
type FaderMode string

const (
	ModeMute   FaderMode = "mute"   // toggled channels read 0
	ModeRandom FaderMode = "random" // toggled channels flip between 0 and 1 per beat
)

// ParseFaderMode accepts "mute" or "random"
func ParseFaderMode(s string) (FaderMode, error) {
	switch FaderMode(s) {
	case ModeMute, ModeRandom:
		return FaderMode(s), nil
	}
	return "", fmt.Errorf("unknown fader mode %q", s)
}

// FaderBank holds the nine fader values and their button latches
type FaderBank struct {
	mode    FaderMode
	values  [NumFaders]float64
	toggled [NumFaders]bool
}

// NewFaderBank creates a bank; an empty mode means ModeMute
func NewFaderBank(mode FaderMode) FaderBank {
	if mode == "" {
		mode = ModeMute
	}
	return FaderBank{mode: mode}
}

func (f *FaderBank) Mode() FaderMode {
	return f.mode
}

// SetValue stores a fader position (0-1) as received
func (f *FaderBank) SetValue(ch int, v float64) {
	if ch < 0 || ch >= NumFaders {
		return
	}
	f.values[ch] = v
}

// Press flips a button latch
func (f *FaderBank) Press(i int) {
	if i < 0 || i >= NumFaders {
		return
	}
	f.toggled[i] = !f.toggled[i]
}

// Advance overrides every latched channel for this beat
func (f *FaderBank) Advance(beat int) {
	for ch := range f.values {
		if !f.toggled[ch] {
			continue
		}
		switch f.mode {
		case ModeRandom:
			if UniformRandom(beat, ch) < 0.5 {
				f.values[ch] = 0
			} else {
				f.values[ch] = 1
			}
		default:
			f.values[ch] = 0
		}
	}
}

func (f *FaderBank) Values() [NumFaders]float64 {
	return f.values
}

func (f *FaderBank) Toggles() [NumFaders]bool {
	return f.toggled
}
