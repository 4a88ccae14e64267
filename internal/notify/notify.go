// Package notify dispatches the best-effort signup notification email.
// Every outcome here is observed through logs only: a missing
// configuration is a skip, a failed send is swallowed, and the caller's
// result is never affected.
package notify

import (
	"context"
	"log"
	"time"

	"client-hub/internal/config"
	"client-hub/internal/domain/client"
	"client-hub/pkg/mailer"
)

const (
	sendTimeout = 15 * time.Second

	logSkipUnconfigured = "Notification email skipped: missing RESEND_API_KEY or NOTIFICATION_EMAIL"
	logSendFailedFmt    = "Failed to send signup notification for client %s: %v"
	logSentFmt          = "Signup notification sent for client %s (message %s)"
)

// Notifier is the post-commit hook invoked after a public signup is
// persisted.
type Notifier interface {
	ClientSignedUp(ctx context.Context, c *client.Client)
}

type EmailNotifier struct {
	provider  mailer.Provider
	recipient string
	from      string
}

// NewEmailNotifier builds the notifier from process configuration. A nil
// provider or empty recipient is not an error; the notifier stays usable
// and skips every dispatch with a log line.
func NewEmailNotifier(cfg config.NotifyConfig) *EmailNotifier {
	var provider mailer.Provider
	if cfg.ResendAPIKey != "" {
		provider = mailer.NewResendProvider(mailer.ResendConfig{APIKey: cfg.ResendAPIKey})
	}

	return &EmailNotifier{
		provider:  provider,
		recipient: cfg.Recipient,
		from:      cfg.From,
	}
}

// NewEmailNotifierWithProvider is used by tests to substitute a fake
// provider.
func NewEmailNotifierWithProvider(provider mailer.Provider, recipient, from string) *EmailNotifier {
	return &EmailNotifier{provider: provider, recipient: recipient, from: from}
}

func (n *EmailNotifier) ClientSignedUp(ctx context.Context, c *client.Client) {
	if n.provider == nil || n.recipient == "" {
		log.Println(logSkipUnconfigured)
		return
	}

	email, err := renderSignupEmail(c, n.from, n.recipient)
	if err != nil {
		log.Printf(logSendFailedFmt, c.ID, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	result, err := n.provider.Send(ctx, email)
	if err != nil {
		log.Printf(logSendFailedFmt, c.ID, err)
		return
	}

	log.Printf(logSentFmt, c.ID, result.MessageID)
}
