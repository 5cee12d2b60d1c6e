package apc

import (
	"errors"
	"sync"

	"go-vjgrid/midi"
)

// recorder is a midi.Sender that keeps everything it was sent
type recorder struct {
	mu   sync.Mutex
	msgs []midi.Message
	err  error
}

func (r *recorder) Send(msg midi.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *recorder) sent() []midi.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]midi.Message, len(r.msgs))
	copy(out, r.msgs)
	return out
}

// reports collects what a Manager reports
type reports struct {
	mu   sync.Mutex
	errs []error
}

func (r *reports) Report(category string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *reports) has(target error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, err := range r.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func padPress(row, col int, velocity uint8) midi.Message {
	return midi.NewMessage(midi.NoteOn, gridNote(row, col), velocity)
}

func padRelease(row, col int) midi.Message {
	return midi.NewMessage(midi.NoteOff, gridNote(row, col), 127)
}

func faderButtonPress(i int) midi.Message {
	return midi.NewMessage(midi.NoteOn, faderButtonNote(i), 127)
}

func pageSelect(page int) midi.Message {
	return midi.NewMessage(midi.NoteOn, pageNote(page), 127)
}

func faderMove(ch int, raw uint8) midi.Message {
	return midi.NewMessage(midi.CC, faderCCs.Start+uint8(ch), raw)
}
