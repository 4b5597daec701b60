package email

import "context"

// Message represents an email message to be sent.
type Message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
}

// Sender is the interface the handler depends on for email delivery.
// The abstraction allows swapping the provider without changing the
// request pipeline, and substituting a double in tests.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
