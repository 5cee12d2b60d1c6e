package apc

import "go-vjgrid/midi"

// State is a read-only copy of the controller state
type State struct {
	Page    int
	Cells   [NumPages][GridCols]GridCell
	Faders  [NumFaders]float64
	Toggles [NumFaders]bool
	Mode    FaderMode
	Beat    int // last beat passed to Update
}

// ParamValues returns the effective value of each column on a page
func (s State) ParamValues(page int) [GridCols]int {
	var out [GridCols]int
	for col, c := range s.Cells[page] {
		out[col] = c.Value()
	}
	return out
}

// FeedbackSize is the number of messages in one full refresh
const FeedbackSize = NumPages + GridRows*GridCols + NumFaders

// Encode renders the whole state as LED messages: page buttons, then the
// current page's grid, then fader buttons.
func Encode(s State) []midi.Message {
	out := make([]midi.Message, 0, FeedbackSize)

	for page := 0; page < NumPages; page++ {
		color := ColorOff
		if page == s.Page {
			color = ColorOn
		}
		out = append(out, midi.NewMessage(midi.NoteOn, pageNote(page), color))
	}

	cells := s.Cells[s.Page]
	for col := 0; col < GridCols; col++ {
		for row := 0; row < GridRows; row++ {
			color := PadColor(cells[col], row, s.Page)
			out = append(out, midi.NewMessage(GridLEDStatus, gridNote(row, col), color))
		}
	}

	for i := 0; i < NumFaders; i++ {
		color := ColorOff
		if s.Toggles[i] {
			color = ColorOn
		}
		out = append(out, midi.NewMessage(midi.NoteOn, faderButtonNote(i), color))
	}

	return out
}

// PadColor is the LED colour for one row of a cell
func PadColor(c GridCell, row, page int) uint8 {
	if c.Disabled() {
		return ColorOff
	}
	if row == RandomRow {
		if c.IsRandom {
			return ColorRandom
		}
		return ColorOn
	}
	if row >= c.MaxOptions {
		return ColorOff
	}
	if row == c.Value() {
		return PageColors[page]
	}
	return ColorOn
}

// Blackout turns every LED off
func Blackout() []midi.Message {
	out := make([]midi.Message, 0, FeedbackSize)
	for page := 0; page < NumPages; page++ {
		out = append(out, midi.NewMessage(midi.NoteOn, pageNote(page), ColorOff))
	}
	for col := 0; col < GridCols; col++ {
		for row := 0; row < GridRows; row++ {
			out = append(out, midi.NewMessage(GridLEDStatus, gridNote(row, col), ColorOff))
		}
	}
	for i := 0; i < NumFaders; i++ {
		out = append(out, midi.NewMessage(midi.NoteOn, faderButtonNote(i), ColorOff))
	}
	return out
}
