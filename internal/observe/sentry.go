// Package observe wires error reporting. When no DSN is configured every
// call is a no-op and the service runs on logs alone.
package observe

import (
	"fmt"
	"time"

	"client-hub/internal/config"

	"github.com/getsentry/sentry-go"
)

const (
	flushTimeout     = 2 * time.Second
	tracesSampleRate = 0.2

	errSentryInitFmt = "sentry initialization failed: %w"
)

func InitSentry(cfg config.SentryConfig) error {
	if cfg.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		TracesSampleRate: tracesSampleRate,
	})
	if err != nil {
		return fmt.Errorf(errSentryInitFmt, err)
	}

	return nil
}

// Flush drains buffered events; call on shutdown.
func Flush() {
	sentry.Flush(flushTimeout)
}

// CaptureError reports an error with request context attached. Without an
// initialized client this does nothing.
func CaptureError(err error, context map[string]interface{}) {
	if hub := sentry.CurrentHub(); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for k, v := range context {
				scope.SetExtra(k, v)
			}
			hub.CaptureException(err)
		})
	}
}
