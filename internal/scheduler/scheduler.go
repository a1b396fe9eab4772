// Package scheduler triggers periodic pipeline runs. It is a thin collaborator
// around the runner: a run that cannot take the lock is skipped, never queued.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"dealscope/server/internal/pipeline"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *pipeline.Runner
	logger *logrus.Logger
}

func NewScheduler(runner *pipeline.Runner, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		runner: runner,
		logger: logger,
	}
}

// Start registers the cron spec and begins scheduling. An empty spec
// disables scheduled runs.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		s.logger.Info("Pipeline scheduler disabled")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		report, err := s.runner.Run(context.Background())
		if err != nil {
			if err == pipeline.ErrRunInProgress {
				s.logger.Info("Scheduled run skipped: another run in progress")
				return
			}
			s.logger.WithError(err).Error("Scheduled pipeline run failed")
			return
		}
		s.logger.WithFields(logrus.Fields{
			"run_id": report.RunID,
			"deals":  report.Deals,
		}).Info("Scheduled pipeline run complete")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.WithField("spec", spec).Info("Pipeline scheduler started")
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
