package job_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/pkg/job"
)

type outcomes struct {
	mu   sync.Mutex
	errs map[string][]error
}

func (o *outcomes) observe(name string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.errs == nil {
		o.errs = map[string][]error{}
	}

	o.errs[name] = append(o.errs[name], err)
}

func (o *outcomes) get(name string) []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errs[name]...)
}

func TestService_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().TryRegisterJob(true, "counter", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	s.Stop()

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, after, calls.Load())
}

func TestService_ObserverSeesErrorsAndPanics(t *testing.T) {
	t.Parallel()

	var (
		calls atomic.Int32
		seen  outcomes
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := job.NewService(job.WithObserver(seen.observe)).
		TryRegisterJob(true, "flaky", 5*time.Millisecond, func(context.Context) error {
			switch calls.Add(1) {
			case 1:
				panic("boom")
			case 2:
				return errors.New("still failing")
			default:
				return nil
			}
		})
	s.Start(ctx)

	require.Eventually(t, func() bool { return len(seen.get("flaky")) >= 3 }, time.Second, time.Millisecond)

	cancel()
	s.Stop()

	errs := seen.get("flaky")
	require.EqualError(t, errs[0], "panic: boom")
	require.EqualError(t, errs[1], "still failing")
	require.NoError(t, errs[2])
}

func TestService_RunIsBoundedByInterval(t *testing.T) {
	t.Parallel()

	var seen outcomes

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := job.NewService(job.WithObserver(seen.observe)).
		TryRegisterJob(true, "slow", 10*time.Millisecond, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
	s.Start(ctx)

	require.Eventually(t, func() bool { return len(seen.get("slow")) >= 1 }, time.Second, time.Millisecond)

	cancel()
	s.Stop()

	require.ErrorIs(t, seen.get("slow")[0], context.DeadlineExceeded)
}

func TestService_TryRegisterJobDisabled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().
		TryRegisterJob(false, "off", time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		TryRegisterJob(true, "zero interval", 0, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	s.Start(ctx)

	time.Sleep(10 * time.Millisecond)
	cancel()
	s.Stop()

	require.Zero(t, calls.Load())
}
