package upsolve

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StudentLister lists the students the periodic sync covers.
type StudentLister interface {
	IDsWithHandles(ctx context.Context) ([]uint, error)
}

// RunStats is the outcome of one sync run.
type RunStats struct {
	Students int
	Failed   int
	Solved   int
	Added    int
	Degraded int
}

// Worker reconciles every student with a handle on an interval.
type Worker struct {
	service   *Service
	students  StudentLister
	interval  time.Duration
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

// NewWorker creates a sync worker. It does nothing until Start.
func NewWorker(service *Service, students StudentLister, interval time.Duration, logger *zap.Logger) *Worker {
	return &Worker{service: service, students: students, interval: interval, logger: logger}
}

// Start schedules the sync job. Runs never overlap.
func (w *Worker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("invalid sync interval %s", w.interval)
	}

	s, err := gocron.NewScheduler(gocron.WithClock(w.service.clock))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			if _, err := w.RunOnce(ctx); err != nil {
				w.logger.Error("Upsolve sync failed", zap.Error(err))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("upsolve-sync"),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("failed to schedule upsolve sync: %w", err)
	}

	s.Start()
	w.scheduler = s
	w.logger.Info("Upsolve sync scheduled", zap.Duration("interval", w.interval))
	return nil
}

// Stop shuts the scheduler down and waits for a running job.
func (w *Worker) Stop() error {
	if w.scheduler == nil {
		return nil
	}
	return w.scheduler.Shutdown()
}

// RunOnce reconciles every student sequentially. A failing student does not stop the run.
func (w *Worker) RunOnce(ctx context.Context) (RunStats, error) {
	var stats RunStats

	ids, err := w.students.IDsWithHandles(ctx)
	if err != nil {
		return stats, err
	}

	start := time.Now()
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Students++

		plan, res, err := w.service.Reconcile(ctx, id, false)
		if err != nil {
			stats.Failed++
			continue
		}
		stats.Solved += res.Solved
		stats.Added += res.Added
		if plan.Summary.Degraded {
			stats.Degraded++
		}
	}

	w.logger.Info("Upsolve sync run finished",
		zap.Int("students", stats.Students),
		zap.Int("failed", stats.Failed),
		zap.Int("solved", stats.Solved),
		zap.Int("added", stats.Added),
		zap.Int("degraded", stats.Degraded),
		zap.Duration("took", time.Since(start)))
	return stats, nil
}
