// Package apc holds the APC mini mk2 controller state: a paged grid of
// one-of-N selectors, nine faders with latching buttons, and the LED
// feedback that mirrors them.
package apc

import "go-vjgrid/midi"

const (
	GridRows  = 8
	GridCols  = 8
	NumPages  = 8
	NumFaders = 9

	// RandomRow is the top grid row, a per-column random toggle
	RandomRow = GridRows - 1
)

// idRange is an inclusive range of note/CC numbers
type idRange struct {
	Start, End uint8
}

func (r idRange) contains(id uint8) bool {
	return id >= r.Start && id <= r.End
}

// APC mini mk2 note/CC layout
var (
	gridNotes        = idRange{0, 63}
	faderButtonNotes = idRange{100, 107}
	pageNotes        = idRange{112, 119}
	faderCCs         = idRange{48, 56}
)

// NinthFaderButton is the master fader button, logical index 8
const NinthFaderButton uint8 = 122

// GridLEDStatus is note-on channel 7: full brightness on the grid pads
const GridLEDStatus uint8 = midi.NoteOn | 0x06

// LED velocity palette
const (
	ColorOff    uint8 = 0
	ColorOn     uint8 = 3
	ColorRandom uint8 = 45
)

// PageColors is the active-cell colour for each page
var PageColors = [NumPages]uint8{
	5,  // red
	60, // orange
	56, // light pink
	53, // pink
	37, // blue
	32, // cyan
	21, // teal
	13, // lime
}

// gridNote maps a logical cell to its pad note (row 0 is the bottom row)
func gridNote(row, col int) uint8 {
	return gridNotes.Start + uint8((GridRows-1-row)*GridCols+col)
}

func faderButtonNote(i int) uint8 {
	if i == NumFaders-1 {
		return NinthFaderButton
	}
	return faderButtonNotes.Start + uint8(i)
}

func pageNote(page int) uint8 {
	return pageNotes.Start + uint8(page)
}

// PagePress is the message a page-select button sends when pressed
func PagePress(page int) midi.Message {
	return midi.NewMessage(midi.NoteOn, pageNote(page), 127)
}

// PadPress is the message a grid pad sends when pressed
func PadPress(row, col int) midi.Message {
	return midi.NewMessage(midi.NoteOn, gridNote(row, col), 127)
}

// FaderButtonPress is the message a fader button sends when pressed
func FaderButtonPress(i int) midi.Message {
	return midi.NewMessage(midi.NoteOn, faderButtonNote(i), 127)
}
