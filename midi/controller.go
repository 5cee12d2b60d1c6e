package midi

// Sender can send a message to the hardware
type Sender interface {
	Send(msg Message) error
}

// Receiver delivers messages received from the hardware.
// The channel is closed when the receiver shuts down.
type Receiver interface {
	Messages() <-chan Message
}

// Controller is a connected control surface: input, output and lifecycle
type Controller interface {
	Sender
	Receiver
	ID() string
	Close() error
}
