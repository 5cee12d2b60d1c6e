package midi

// MIDI status bytes (channel 0)
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
	CC      uint8 = 0xB0
)

// Message is a raw three-byte channel message: status, id (note/CC), value
type Message [3]byte

// NewMessage builds a message from its three bytes
func NewMessage(status, id, value uint8) Message {
	return Message{status, id, value}
}

func (m Message) Status() uint8 { return m[0] }
func (m Message) ID() uint8     { return m[1] }
func (m Message) Value() uint8  { return m[2] }

// FromBytes converts a driver message to a Message.
// Returns false for anything that is not exactly three bytes (SysEx, clock, etc).
func FromBytes(b []byte) (Message, bool) {
	if len(b) != 3 {
		return Message{}, false
	}
	return Message{b[0], b[1], b[2]}, true
}
