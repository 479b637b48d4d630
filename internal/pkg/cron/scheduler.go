// Package cron runs the background maintenance jobs. The only
// schedule this system needs is "once a day at a fixed hour", so that
// is the only schedule the package offers.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

// Job runs once a day at Hour o'clock.
type Job struct {
	Name string
	Hour int
	Fn   func(ctx context.Context) error
}

type Scheduler struct {
	jobs   []Job
	clock  clock.Clock
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(clk clock.Clock) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		clock:  clk,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddDailyJob registers fn to run every day at hour o'clock.
func (s *Scheduler) AddDailyJob(name string, hour int, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Hour: hour, Fn: fn})
	slog.Info("Cron job registered", "name", name, "hour", hour)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	for {
		timer := time.NewTimer(untilNextRun(s.clock.Now(), job.Hour))
		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
}

// untilNextRun returns the wait until the next occurrence of hour
// o'clock, strictly in the future so a job never fires twice in the
// same slot.
func untilNextRun(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// RunOnce executes every registered job immediately, used by tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
