// Package sentry reports errors to Sentry. When disabled the reporter
// degrades to logging only, so callers never branch on configuration.
package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/speero/partsbilling/internal/config"
	ierr "github.com/speero/partsbilling/internal/errors"
	"github.com/speero/partsbilling/internal/logger"
	"github.com/speero/partsbilling/internal/types"
)

// Reporter is the error-reporting sink consumed by the billing run.
type Reporter struct {
	cfg    *config.SentryConfig
	logger *logger.Logger
}

// NewReporter initializes the Sentry SDK when enabled and returns a reporter.
func NewReporter(cfg *config.Configuration, log *logger.Logger) (*Reporter, error) {
	r := &Reporter{cfg: &cfg.Sentry, logger: log}
	if !cfg.Sentry.Enabled {
		return r, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		TracesSampleRate: cfg.Sentry.SampleRate,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to initialize Sentry").
			Mark(ierr.ErrSystem)
	}
	return r, nil
}

// ReportError sends the error to Sentry (fire and forget) and logs it.
// Reportable details attached to the error chain are forwarded as extras.
func (r *Reporter) ReportError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	r.logger.WithContext(ctx).Errorw("reporting error", "error", err)

	if !r.cfg.Enabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if runID := types.GetRunID(ctx); runID != "" {
			scope.SetTag("run_id", runID)
		}
		if details := ierr.Details(err); len(details) > 0 {
			scope.SetExtras(details)
		}
		sentry.CaptureException(err)
	})
}

// Flush waits for buffered events to be delivered, for use on shutdown.
func (r *Reporter) Flush(timeout time.Duration) {
	if r.cfg.Enabled {
		sentry.Flush(timeout)
	}
}
