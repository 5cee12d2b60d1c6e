package apc

import (
	"testing"

	"go-vjgrid/midi"
)

func gridIndex(row, col int) int {
	return NumPages + col*GridRows + row
}

func TestEncodeLayout(t *testing.T) {
	var s State
	s.Page = 2
	msgs := Encode(s)

	if len(msgs) != FeedbackSize {
		t.Fatalf("Expected %d messages, got %d", FeedbackSize, len(msgs))
	}
	for i := 0; i < NumPages; i++ {
		m := msgs[i]
		if m.Status() != midi.NoteOn || m.ID() != 112+uint8(i) {
			t.Errorf("page button %d: got %v", i, m)
		}
	}
	for i := NumPages; i < NumPages+GridRows*GridCols; i++ {
		if msgs[i].Status() != GridLEDStatus {
			t.Errorf("grid message %d has status %#x", i, msgs[i].Status())
		}
	}
	tail := msgs[NumPages+GridRows*GridCols:]
	wantIDs := []uint8{100, 101, 102, 103, 104, 105, 106, 107, 122}
	for i, id := range wantIDs {
		if tail[i].ID() != id || tail[i].Status() != midi.NoteOn {
			t.Errorf("fader button %d: got %v", i, tail[i])
		}
	}
}

func TestEncodePageButtons(t *testing.T) {
	msgs := Encode(State{Page: 5})
	for i := 0; i < NumPages; i++ {
		want := ColorOff
		if i == 5 {
			want = ColorOn
		}
		if msgs[i].Value() != want {
			t.Errorf("page %d: colour %d, want %d", i, msgs[i].Value(), want)
		}
	}
}

func TestEncodeGridColours(t *testing.T) {
	var s State
	s.Page = 2
	s.Cells[2][0] = GridCell{MaxOptions: 5, SelectedRow: 3}
	s.Cells[2][1] = GridCell{MaxOptions: 4, SelectedRow: 1, IsRandom: true, RandomValue: 2}
	// col 2 disabled; page 0 content must not show
	s.Cells[0][2] = GridCell{MaxOptions: 8}

	msgs := Encode(s)
	colour := func(row, col int) uint8 {
		m := msgs[gridIndex(row, col)]
		if m.ID() != gridNote(row, col) {
			t.Fatalf("(%d,%d) addressed note %d, want %d", row, col, m.ID(), gridNote(row, col))
		}
		return m.Value()
	}

	tests := []struct {
		row, col int
		want     uint8
	}{
		{3, 0, PageColors[2]},
		{0, 0, ColorOn},
		{4, 0, ColorOn},
		{5, 0, ColorOff},
		{6, 0, ColorOff},
		{RandomRow, 0, ColorOn},
		{2, 1, PageColors[2]},
		{1, 1, ColorOn},
		{RandomRow, 1, ColorRandom},
		{0, 2, ColorOff},
		{RandomRow, 2, ColorOff},
	}
	for _, tt := range tests {
		if got := colour(tt.row, tt.col); got != tt.want {
			t.Errorf("(%d,%d): colour %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestEncodeFaderButtons(t *testing.T) {
	var s State
	s.Toggles[0] = true
	s.Toggles[8] = true
	msgs := Encode(s)
	tail := msgs[NumPages+GridRows*GridCols:]
	for i, m := range tail {
		want := ColorOff
		if i == 0 || i == 8 {
			want = ColorOn
		}
		if m.Value() != want {
			t.Errorf("fader button %d: colour %d, want %d", i, m.Value(), want)
		}
	}
}

func TestBlackout(t *testing.T) {
	msgs := Blackout()
	if len(msgs) != FeedbackSize {
		t.Fatalf("Expected %d messages, got %d", FeedbackSize, len(msgs))
	}
	full := Encode(State{})
	for i, m := range msgs {
		if m.Value() != ColorOff {
			t.Errorf("message %d not off: %v", i, m)
		}
		if m.ID() != full[i].ID() || m.Status() != full[i].Status() {
			t.Errorf("message %d addresses %v, want %v", i, m, full[i])
		}
	}
}
