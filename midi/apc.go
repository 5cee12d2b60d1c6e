package midi

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go-vjgrid/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// APCController handles an Akai APC mini mk2
type APCController struct {
	id       string
	outPort  drivers.Out
	inPort   drivers.In
	send     func(msg gomidi.Message) error
	stopFunc func()

	msgChan   chan Message
	closeOnce sync.Once
	sent      uint64
	dropped   uint64
}

// NewAPCController opens the given ports. Either port may be nil.
func NewAPCController(id string, inPort drivers.In, outPort drivers.Out) (*APCController, error) {
	c := &APCController{
		id:      id,
		inPort:  inPort,
		outPort: outPort,
		msgChan: make(chan Message, 256),
	}

	if outPort != nil {
		send, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		c.send = send
	}

	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			m, ok := FromBytes(msg.Bytes())
			if !ok {
				return
			}
			select {
			case c.msgChan <- m:
			default:
				// tick loop stalled, drop rather than block the driver thread
				n := atomic.AddUint64(&c.dropped, 1)
				debug.LogEvery(32, "apc-in", "dropped input message id=%d (total=%d)", m.ID(), n)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		c.stopFunc = stop
	}

	return c, nil
}

func (c *APCController) ID() string {
	return c.id
}

func (c *APCController) Messages() <-chan Message {
	return c.msgChan
}

// Send writes one message to the output port. No-op without an output.
func (c *APCController) Send(msg Message) error {
	if c.send == nil {
		return nil
	}
	atomic.AddUint64(&c.sent, 1)
	return c.send(gomidi.Message([]byte{msg[0], msg[1], msg[2]}))
}

// SentCount returns the number of messages written so far
func (c *APCController) SentCount() uint64 {
	return atomic.LoadUint64(&c.sent)
}

func (c *APCController) Close() error {
	c.closeOnce.Do(func() {
		if c.stopFunc != nil {
			c.stopFunc()
		}
		close(c.msgChan)
	})
	return nil
}
