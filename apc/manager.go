package apc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"go-vjgrid/midi"
)

// ErrNotInitialized is the panic value for a Manager not built by NewManager
var ErrNotInitialized = errors.New("apc: manager not initialized")

// Reporter receives errors the manager cannot return to a caller
type Reporter interface {
	Report(category string, err error)
}

type nopReporter struct{}

func (nopReporter) Report(string, error) {}

// Manager owns the controller state. Input arrives through Enqueue (any
// goroutine) or Dispatch; Update is called once per frame by the host.
type Manager struct {
	mu      sync.Mutex
	ready   bool
	grid    Grid
	faders  FaderBank
	page    int
	beat    int
	pending []midi.Message
	leds    []midi.Message

	out      midi.Sender
	reporter Reporter
	sendMu   sync.Mutex // keeps feedback groups from interleaving
}

// NewManager creates a manager with every grid column disabled
func NewManager(mode FaderMode) *Manager {
	return &Manager{
		ready:    true,
		faders:   NewFaderBank(mode),
		reporter: nopReporter{},
	}
}

func (m *Manager) mustInit() {
	if m == nil || !m.ready {
		panic(ErrNotInitialized)
	}
}

// SetSender sets where LED feedback goes (nil disables output)
func (m *Manager) SetSender(s midi.Sender) {
	m.mustInit()
	m.sendMu.Lock()
	defer m.sendMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.out = s
}

// SetReporter sets the error sink (nil discards)
func (m *Manager) SetReporter(r Reporter) {
	m.mustInit()
	if r == nil {
		r = nopReporter{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reporter = r
}

// Enqueue queues a message for the next Update. Safe from any goroutine.
func (m *Manager) Enqueue(msg midi.Message) {
	m.mustInit()
	m.mu.Lock()
	m.pending = append(m.pending, msg)
	m.mu.Unlock()
}

// Pending returns how many messages wait for the next Update
func (m *Manager) Pending() int {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Dispatch applies a message immediately, ahead of anything queued
func (m *Manager) Dispatch(msg midi.Message) Event {
	m.mustInit()
	ev := Classify(msg)
	m.mu.Lock()
	m.apply(ev)
	m.mu.Unlock()
	return ev
}

// Listen feeds a receiver into the queue until ctx is done or the
// receiver's channel closes.
func (m *Manager) Listen(ctx context.Context, r midi.Receiver) {
	m.mustInit()
	msgs := r.Messages()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			m.Enqueue(msg)
		}
	}
}

func (m *Manager) apply(ev Event) {
	switch ev.Kind {
	case KindGridPad:
		if ev.Pressed() {
			m.grid.Press(m.page, ev.Row, ev.Col)
		}
	case KindFaderButton:
		if ev.Pressed() {
			m.faders.Press(ev.Index)
		}
	case KindPageSelect:
		if ev.Pressed() {
			m.page = ev.Page
		}
	case KindFader:
		m.faders.SetValue(ev.Index, ev.Value)
	}
}

// Update runs one tick: apply queued input in arrival order, advance random
// cells and latched faders for the floored beat, then send the full LED state.
func (m *Manager) Update(beat float64) {
	m.mustInit()
	b := int(math.Floor(beat))

	m.sendMu.Lock()
	defer m.sendMu.Unlock()

	m.mu.Lock()
	for _, msg := range m.pending {
		m.apply(Classify(msg))
	}
	m.pending = m.pending[:0]

	m.beat = b
	m.grid.Advance(b)
	m.faders.Advance(b)
	leds := Encode(m.snapshot())
	m.leds = leds
	out, rep := m.out, m.reporter
	m.mu.Unlock()

	if out == nil {
		return
	}
	for i, msg := range leds {
		if err := out.Send(msg); err != nil {
			rep.Report("apc-send", fmt.Errorf("feedback %d/%d: %w", i+1, len(leds), err))
			return
		}
	}
}

// SetMaxOptionsForPage sets each column's option count on a page. Invalid
// input is reported and leaves the state unchanged.
func (m *Manager) SetMaxOptionsForPage(page int, counts []int) error {
	m.mustInit()
	m.mu.Lock()
	err := m.grid.SetMaxOptions(page, counts)
	rep := m.reporter
	m.mu.Unlock()
	if err != nil {
		rep.Report("apc", err)
	}
	return err
}

// ParamValues returns the effective value of each column on a page
func (m *Manager) ParamValues(page int) ([GridCols]int, error) {
	m.mustInit()
	if !validPage(page) {
		return [GridCols]int{}, fmt.Errorf("param values: %w: %d", ErrPageOutOfRange, page)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.ParamValues(page), nil
}

// CurrentParamValues is ParamValues for the selected page
func (m *Manager) CurrentParamValues() [GridCols]int {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.ParamValues(m.page)
}

// Cell returns a copy of one grid cell
func (m *Manager) Cell(page, col int) GridCell {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.Cell(page, col)
}

func (m *Manager) FaderValues() [NumFaders]float64 {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.faders.Values()
}

func (m *Manager) Toggles() [NumFaders]bool {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.faders.Toggles()
}

func (m *Manager) CurrentPage() int {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.page
}

// Snapshot copies the whole state
func (m *Manager) Snapshot() State {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Manager) snapshot() State {
	return State{
		Page:    m.page,
		Cells:   m.grid.cells,
		Faders:  m.faders.Values(),
		Toggles: m.faders.Toggles(),
		Mode:    m.faders.Mode(),
		Beat:    m.beat,
	}
}

// LEDs returns the feedback sent by the last Update
func (m *Manager) LEDs() []midi.Message {
	m.mustInit()
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]midi.Message, len(m.leds))
	copy(out, m.leds)
	return out
}

// Close turns the controller's LEDs off
func (m *Manager) Close() error {
	m.mustInit()
	m.sendMu.Lock()
	defer m.sendMu.Unlock()

	m.mu.Lock()
	out := m.out
	m.mu.Unlock()
	if out == nil {
		return nil
	}
	for _, msg := range Blackout() {
		if err := out.Send(msg); err != nil {
			return fmt.Errorf("blackout: %w", err)
		}
	}
	return nil
}
