package services

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/AFNANSH552/nutrition-ai-agent/store"
)

// SweepService periodically walks every user and runs the orchestrator at
// wall-clock now, logging whatever would have been delivered. It is the
// in-process stand-in for a push pipeline; there is no delivery transport.
type SweepService struct {
	svc      *NotificationService
	data     *store.Dataset
	interval time.Duration
	log      *zap.SugaredLogger
	sched    gocron.Scheduler
}

func NewSweepService(svc *NotificationService, data *store.Dataset, interval time.Duration, log *zap.SugaredLogger) *SweepService {
	return &SweepService{svc: svc, data: data, interval: interval, log: log}
}

// Start schedules the sweep and returns immediately.
func (s *SweepService) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	if _, err := sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.RunOnce),
	); err != nil {
		return fmt.Errorf("register sweep job: %w", err)
	}
	s.sched = sched
	sched.Start()
	s.log.Infow("notification sweep started", "interval", s.interval)
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep to finish.
func (s *SweepService) Stop() {
	if s.sched != nil {
		_ = s.sched.Shutdown()
	}
}

// RunOnce generates notifications for every known user at the current
// instant.
func (s *SweepService) RunOnce() {
	now := time.Now().UTC()
	emitted := 0
	for _, userID := range s.data.UserIDs {
		for _, bundle := range s.svc.Generate(userID, now) {
			emitted++
			for _, item := range bundle.Items {
				s.log.Infow("sweep notification",
					"user_id", userID,
					"trigger", bundle.Trigger,
					"food_id", item.FoodID,
					"score", item.Score,
					"message", item.Message,
				)
			}
		}
	}
	s.log.Infow("sweep complete", "users", len(s.data.UserIDs), "bundles", emitted)
}
