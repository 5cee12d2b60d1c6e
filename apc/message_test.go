package apc

import (
	"testing"

	"go-vjgrid/midi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  midi.Message
		want Event
	}{
		{"bottom-left pad", midi.NewMessage(midi.NoteOn, 56, 100),
			Event{Kind: KindGridPad, Status: midi.NoteOn, Velocity: 100, Row: 0, Col: 0}},
		{"top-right pad", midi.NewMessage(midi.NoteOn, 7, 100),
			Event{Kind: KindGridPad, Status: midi.NoteOn, Velocity: 100, Row: 7, Col: 7}},
		{"pad note-off", midi.NewMessage(midi.NoteOff, 63, 127),
			Event{Kind: KindGridPad, Status: midi.NoteOff, Velocity: 127, Row: 0, Col: 7}},
		{"first fader button", midi.NewMessage(midi.NoteOn, 100, 127),
			Event{Kind: KindFaderButton, Status: midi.NoteOn, Velocity: 127, Index: 0}},
		{"eighth fader button", midi.NewMessage(midi.NoteOff, 107, 0),
			Event{Kind: KindFaderButton, Status: midi.NoteOff, Index: 7}},
		{"ninth fader button", midi.NewMessage(midi.NoteOn, 122, 127),
			Event{Kind: KindFaderButton, Status: midi.NoteOn, Velocity: 127, Index: 8}},
		{"page select", midi.NewMessage(midi.NoteOn, 114, 127),
			Event{Kind: KindPageSelect, Status: midi.NoteOn, Velocity: 127, Page: 2}},
		{"page note-off ignored", midi.NewMessage(midi.NoteOff, 114, 0),
			Event{Kind: KindIgnored, Status: midi.NoteOff}},
		{"fader min", midi.NewMessage(midi.CC, 48, 0),
			Event{Kind: KindFader, Status: midi.CC, Index: 0, Value: 0}},
		{"master fader max", midi.NewMessage(midi.CC, 56, 127),
			Event{Kind: KindFader, Status: midi.CC, Index: 8, Value: 1}},
		{"unknown cc", midi.NewMessage(midi.CC, 57, 64),
			Event{Kind: KindIgnored, Status: midi.CC}},
		{"note between ranges", midi.NewMessage(midi.NoteOn, 64, 127),
			Event{Kind: KindIgnored, Status: midi.NoteOn}},
		{"other channel", midi.NewMessage(midi.NoteOn|0x01, 10, 127),
			Event{Kind: KindIgnored, Status: midi.NoteOn | 0x01}},
		{"pad id as cc", midi.NewMessage(midi.CC, 10, 127),
			Event{Kind: KindIgnored, Status: midi.CC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.msg)
			if got != tt.want {
				t.Errorf("Classify(%v) = %+v, want %+v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestClassifyGridRoundTrip(t *testing.T) {
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			ev := Classify(padPress(row, col, 1))
			if ev.Kind != KindGridPad || ev.Row != row || ev.Col != col {
				t.Fatalf("pad (%d,%d) classified as %+v", row, col, ev)
			}
		}
	}
}

func TestEventPressed(t *testing.T) {
	if !Classify(padPress(0, 0, 1)).Pressed() {
		t.Error("Expected note-on velocity 1 to be a press")
	}
	if Classify(padPress(0, 0, 0)).Pressed() {
		t.Error("Expected note-on velocity 0 to be a release")
	}
	if Classify(padRelease(0, 0)).Pressed() {
		t.Error("Expected note-off to be a release")
	}
}
