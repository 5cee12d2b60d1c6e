package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-vjgrid/debug"

	"github.com/google/uuid"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// DefaultPortMatch is matched (case-insensitive) against port names
const DefaultPortMatch = "apc mini mk2"

// DeviceEvent is emitted when controllers connect/disconnect
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
	Session    string // unique per connection, changes on replug
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

func (t DeviceEventType) String() string {
	switch t {
	case DeviceConnected:
		return "connected"
	case DeviceDisconnected:
		return "disconnected"
	}
	return "unknown"
}

type connection struct {
	controller Controller
	session    string
}

// DeviceManager handles hot-plug detection of grid controllers
type DeviceManager struct {
	match       string
	controllers map[string]connection
	mu          sync.RWMutex
	events      chan DeviceEvent
	pollRate    time.Duration
}

// NewDeviceManager creates a device manager that opens ports whose name
// contains match. An empty match uses DefaultPortMatch.
func NewDeviceManager(match string) *DeviceManager {
	if match == "" {
		match = DefaultPortMatch
	}
	return &DeviceManager{
		match:       strings.ToLower(match),
		controllers: make(map[string]connection),
		events:      make(chan DeviceEvent, 16),
		pollRate:    time.Second,
	}
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

// Matches reports whether a port name belongs to a controller we drive
func (dm *DeviceManager) Matches(portName string) bool {
	return matchPort(portName, dm.match)
}

func matchPort(portName, match string) bool {
	return strings.Contains(strings.ToLower(portName), match)
}

func (dm *DeviceManager) scan() {
	inPorts, outPorts, ok := ListPorts(3 * time.Second)
	if !ok {
		debug.Log("devices", "port scan timed out")
		return
	}

	seenIDs := make(map[string]bool)

	for i, inPort := range inPorts {
		name := inPort.String()
		if !dm.Matches(name) {
			continue
		}
		id := name
		seenIDs[id] = true

		dm.mu.RLock()
		_, exists := dm.controllers[id]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		outPort := FindOutPort(outPorts, name, dm.match)

		c, err := NewAPCController(id, inPorts[i], outPort)
		if err != nil {
			debug.Error("devices", err)
			continue
		}

		conn := connection{controller: c, session: uuid.New().String()}
		dm.mu.Lock()
		dm.controllers[id] = conn
		dm.mu.Unlock()

		debug.Log("devices", "connected %q session=%s", id, conn.session)
		dm.events <- DeviceEvent{
			Type:       DeviceConnected,
			Controller: c,
			ID:         id,
			Session:    conn.session,
		}
	}

	dm.mu.Lock()
	var toRemove []string
	for id := range dm.controllers {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		conn := dm.controllers[id]
		conn.controller.Close()
		delete(dm.controllers, id)
		debug.Log("devices", "disconnected %q session=%s", id, conn.session)
		dm.events <- DeviceEvent{
			Type:    DeviceDisconnected,
			ID:      id,
			Session: conn.session,
		}
	}
	dm.mu.Unlock()
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.controller.Close()
	}
	dm.controllers = make(map[string]connection)
}

// ListPorts enumerates ports with a timeout (CoreMIDI can hang)
func ListPorts(timeout time.Duration) ([]drivers.In, []drivers.Out, bool) {
	type portsResult struct {
		inPorts  []drivers.In
		outPorts []drivers.Out
	}

	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{inPorts: gomidi.GetInPorts(), outPorts: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		return r.inPorts, r.outPorts, true
	case <-time.After(timeout):
		return nil, nil, false
	}
}

// FindOutPort picks the output that pairs with an input port: same name
// first, otherwise the first output that also matches.
func FindOutPort(outPorts []drivers.Out, inName, match string) drivers.Out {
	for _, op := range outPorts {
		if strings.EqualFold(op.String(), inName) {
			return op
		}
	}
	for _, op := range outPorts {
		if matchPort(op.String(), strings.ToLower(match)) {
			return op
		}
	}
	return nil
}
