// Package mailer sends transactional email through an HTTP email API.
// It knows nothing about what the emails say; callers render content and
// hand it a fully formed message.
package mailer

import "context"

type Provider interface {
	Send(ctx context.Context, email *Email) (*SendResult, error)
	Name() string
}

type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

type SendResult struct {
	MessageID string
	Provider  string
}
