// Package scheduler triggers the invoicing run on a cron schedule.
package scheduler

import (
	"github.com/robfig/cron/v3"

	ierr "github.com/speero/partsbilling/internal/errors"
	"github.com/speero/partsbilling/internal/logger"
)

// Scheduler fires registered handlers on their cron schedule. It is a thin
// binding over robfig/cron; it provides no overlap protection between a
// slow run and the next tick.
type Scheduler struct {
	cron    *cron.Cron
	logger  *logger.Logger
	onStart []func()
	started bool
}

// New creates a scheduler.
func New(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: log,
	}
}

// ScheduleDaily registers a handler on the given cron spec (standard five
// field format, e.g. "0 0 * * *" for midnight). When runOnStart is set the
// handler also fires once as soon as the scheduler starts.
func (s *Scheduler) ScheduleDaily(spec string, handler func(), runOnStart bool) error {
	if _, err := s.cron.AddFunc(spec, handler); err != nil {
		return ierr.WithError(err).
			WithHintf("Invalid cron spec %q", spec).
			Mark(ierr.ErrValidation)
	}
	if runOnStart {
		s.onStart = append(s.onStart, handler)
	}
	return nil
}

// Start runs the scheduler in the background, firing run-on-start handlers
// first.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true

	for _, handler := range s.onStart {
		go handler()
	}
	s.cron.Start()
	s.logger.Infow("scheduler started", "entries", len(s.cron.Entries()))
}

// Stop stops firing new runs. A run already in flight is not interrupted.
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	s.started = false
	<-s.cron.Stop().Done()
	s.logger.Infow("scheduler stopped")
}
