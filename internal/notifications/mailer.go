package notifications

import "context"

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers a message and returns the id the transport assigned to it.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}
