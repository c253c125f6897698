package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Observer is told about every finished run. A recovered panic arrives as err.
type Observer func(name string, err error, took time.Duration)

type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observe = o
	}
}

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

type Service struct {
	jobs    []job
	observe Observer
	wg      sync.WaitGroup
}

func NewService(opts ...Option) *Service {
	s := &Service{
		observe: func(string, error, time.Duration) {},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// TryRegisterJob schedules fn every interval. Disabled jobs and jobs without an
// interval are logged and skipped.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		slog.Info("job disabled", "job", name, "interval", interval)
		return s
	}

	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})

	return s
}

// Start runs every job once right away and then on its interval until ctx is done.
func (s *Service) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.loop(ctx, j)
	}
}

// Stop waits for the loops to return. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}

func (s *Service) loop(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		s.runOnce(ctx, l, j)

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "context done")
			return

		case <-ticker.C:
		}
	}
}

// runOnce bounds a run by the job interval so runs never overlap.
func (s *Service) runOnce(ctx context.Context, l *slog.Logger, j job) {
	runCtx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	start := time.Now()

	err := s.call(runCtx, l, j)

	took := time.Since(start)
	s.observe(j.name, err, took)

	if err != nil {
		l.ErrorContext(ctx, "job failed", "error", err, "took", took)
		return
	}

	l.DebugContext(ctx, "job done", "took", took)
}

func (s *Service) call(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return j.fn(ctx)
}
