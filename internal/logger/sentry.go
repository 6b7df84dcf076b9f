package logger

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentrySettings represents the configuration required to bootstrap Sentry.
type SentrySettings struct {
	DSN         string
	Environment string
	Release     string
}

// Reporter forwards unexpected errors to an error tracking backend.
type Reporter interface {
	Report(err error, fields map[string]string)
}

type nopReporter struct{}

func (nopReporter) Report(error, map[string]string) {}

type sentryReporter struct {
	hub *sentry.Hub
}

func (r *sentryReporter) Report(err error, fields map[string]string) {
	if err == nil {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range fields {
			scope.SetTag(k, v)
		}
		r.hub.CaptureException(err)
	})
}

// InitSentry creates a Reporter backed by Sentry. With an empty DSN it returns a no-op
// reporter so callers never have to nil-check.
func InitSentry(settings SentrySettings) (Reporter, func(), error) {
	if settings.DSN == "" {
		return nopReporter{}, func() {}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         settings.DSN,
		Environment: settings.Environment,
		Release:     settings.Release,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize sentry client: %w", err)
	}

	hub := sentry.NewHub(client, sentry.NewScope())
	flush := func() {
		hub.Flush(2 * time.Second)
	}

	return &sentryReporter{hub: hub}, flush, nil
}

// NopReporter returns a Reporter that drops every error.
func NopReporter() Reporter {
	return nopReporter{}
}
