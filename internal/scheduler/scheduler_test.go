package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speero/partsbilling/internal/logger"
)

func TestScheduleDailyRejectsBadSpec(t *testing.T) {
	s := New(logger.GetLogger())

	err := s.ScheduleDaily("not a cron spec", func() {}, false)
	require.Error(t, err)
}

func TestRunOnStartFiresHandler(t *testing.T) {
	s := New(logger.GetLogger())

	fired := make(chan struct{})
	err := s.ScheduleDaily("0 0 * * *", func() { close(fired) }, true)
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("run-on-start handler did not fire")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	s := New(logger.GetLogger())

	count := 0
	done := make(chan struct{})
	err := s.ScheduleDaily("0 0 * * *", func() {
		count++
		close(done)
	}, true)
	require.NoError(t, err)

	s.Start()
	s.Start()
	defer s.Stop()

	<-done
	// Give a duplicate start a moment to misfire before checking.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, count)
}
