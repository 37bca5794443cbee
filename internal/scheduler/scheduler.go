// Package scheduler runs the background jobs: exchange-rate updates and
// optional periodic snapshot refreshes.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
)

type Scheduler struct {
	cron   *cron.Cron
	logger logger.Logger
}

func NewScheduler(logger logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

func (s *Scheduler) AddJob(spec, name string, job func()) error {
	if _, err := s.cron.AddFunc(spec, func() {
		s.logger.Debugf("running scheduled job %s", name)
		job()
	}); err != nil {
		return fmt.Errorf("%w: can't schedule %s", err, name)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
