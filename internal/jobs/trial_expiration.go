package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const trialExpirationSpec = "@every 1h"

type TrialExpirer interface {
	Execute(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log.Named("jobs"),
	}
}

// RegisterTrialExpiration moves overdue trials to expired every hour.
func (s *Scheduler) RegisterTrialExpiration(expirer TrialExpirer) error {
	_, err := s.cron.AddFunc(trialExpirationSpec, func() {
		RunTrialExpiration(context.Background(), expirer, s.log)
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("jobs still running at shutdown")
	}
}

func RunTrialExpiration(ctx context.Context, expirer TrialExpirer, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	n, err := expirer.Execute(ctx, time.Now())
	if err != nil {
		log.Error("trial expiration failed", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("trials expired", zap.Int64("profiles", n))
	}
}
