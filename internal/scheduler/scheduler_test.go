package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
)

func newScheduler(t *testing.T) *Scheduler {
	t.Helper()
	l, _, err := logger.NewZapLogger(logger.Error)
	require.NoError(t, err)
	return NewScheduler(l)
}

func TestAddJobRejectsBadSpec(t *testing.T) {
	s := newScheduler(t)
	assert.Error(t, s.AddJob("not a cron spec", "broken", func() {}))
}

func TestScheduledJobRuns(t *testing.T) {
	s := newScheduler(t)

	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob("@every 10ms", "tick", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job never ran")
	}
}
