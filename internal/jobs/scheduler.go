package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs named housekeeping jobs on cron schedules
type Scheduler struct {
	c *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		c: cron.New(cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{}))),
	}
}

// Add registers job under a standard five-field cron spec or a descriptor
// such as "@hourly"
func (s *Scheduler) Add(name, spec string, job func() error) error {
	_, err := s.c.AddFunc(spec, func() {
		start := time.Now()
		err := job()
		if err != nil {
			slog.Error("scheduled job failed", "job", name, "error", err)
			return
		}
		slog.Debug("scheduled job completed", "job", name, "duration_ms", time.Since(start).Milliseconds())
	})
	if err != nil {
		return err
	}

	slog.Info("scheduled job queued", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
	}
}

// cronLogger adapts cron's logger to slog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
