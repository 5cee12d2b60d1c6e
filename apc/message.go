package apc

import "go-vjgrid/midi"

// Kind is the semantic category of an input message
type Kind int

const (
	KindIgnored Kind = iota
	KindGridPad
	KindFaderButton
	KindPageSelect
	KindFader
)

func (k Kind) String() string {
	switch k {
	case KindGridPad:
		return "grid"
	case KindFaderButton:
		return "fader-button"
	case KindPageSelect:
		return "page"
	case KindFader:
		return "fader"
	}
	return "ignored"
}

// Event is a classified input message. Only the fields for Kind are set.
type Event struct {
	Kind     Kind
	Status   uint8
	Velocity uint8

	Row, Col int     // KindGridPad
	Index    int     // KindFaderButton, KindFader
	Page     int     // KindPageSelect
	Value    float64 // KindFader, 0-1
}

// Pressed is true for a note-on with non-zero velocity.
// Note-off and zero-velocity note-on are releases.
func (e Event) Pressed() bool {
	return e.Status == midi.NoteOn && e.Velocity > 0
}

// Classify maps a raw message to exactly one category. It has no side effects.
func Classify(msg midi.Message) Event {
	status, id, value := msg.Status(), msg.ID(), msg.Value()
	isNote := status == midi.NoteOn || status == midi.NoteOff

	switch {
	case isNote && gridNotes.contains(id):
		idx := int(id - gridNotes.Start)
		return Event{
			Kind:     KindGridPad,
			Status:   status,
			Velocity: value,
			Col:      idx % GridCols,
			Row:      GridRows - 1 - idx/GridCols, // pads are numbered top-down
		}

	case isNote && (faderButtonNotes.contains(id) || id == NinthFaderButton):
		idx := int(id) - int(faderButtonNotes.Start)
		if id == NinthFaderButton {
			idx = NumFaders - 1
		}
		return Event{Kind: KindFaderButton, Status: status, Velocity: value, Index: idx}

	case status == midi.NoteOn && pageNotes.contains(id):
		page := int(id - pageNotes.Start)
		if page >= NumPages {
			break
		}
		return Event{Kind: KindPageSelect, Status: status, Velocity: value, Page: page}

	case status == midi.CC && faderCCs.contains(id):
		return Event{
			Kind:   KindFader,
			Status: status,
			Index:  int(id - faderCCs.Start),
			Value:  float64(value) / 127,
		}
	}

	return Event{Kind: KindIgnored, Status: status}
}
