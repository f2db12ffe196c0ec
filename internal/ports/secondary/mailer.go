package secondary

import "context"

// Mailer defines the secondary port for outbound notifications.
type Mailer interface {
	// Send transmits a message. A nil return means the message was
	// accepted by the transport; any error counts as a failed send.
	Send(ctx context.Context, msg Message) error
}

// Message is an outbound notification ready for transmission.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}
