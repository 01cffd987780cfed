package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"
)

// newTestGateway 返回记录退避时长而不真实等待的网关
// newTestGateway returns a gateway that records backoff delays without sleeping
func newTestGateway() (*Gateway, *[]time.Duration) {
	g := NewGateway()
	var delays []time.Duration
	g.SetSleep(func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	})
	return g, &delays
}

func TestGateway_SuccessFirstAttempt(t *testing.T) {
	g, delays := newTestGateway()

	calls := 0
	err := g.Invoke(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
	if len(*delays) != 0 {
		t.Fatalf("no backoff expected on first-attempt success, got %v", *delays)
	}
}

func TestGateway_LinearBackoffAndExhaustion(t *testing.T) {
	g, delays := newTestGateway()

	boom := errors.New("boom")
	calls := 0
	err := g.Invoke(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	if calls != 3 {
		t.Fatalf("calls=%d, want exactly 3 attempts", calls)
	}
	// 第 1 次重试前 1s，第 2 次重试前 2s / 1s before retry 1, 2s before retry 2
	if len(*delays) != 2 || (*delays)[0] != time.Second || (*delays)[1] != 2*time.Second {
		t.Fatalf("delays=%v, want [1s 2s]", *delays)
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err=%v, want *GenerationError", err)
	}
	if genErr.Attempts != 3 {
		t.Fatalf("Attempts=%d, want 3", genErr.Attempts)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("GenerationError should unwrap to the last error")
	}
}

func TestGateway_RecoversMidway(t *testing.T) {
	g, delays := newTestGateway()

	calls := 0
	err := g.Invoke(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if calls != 3 || len(*delays) != 2 {
		t.Fatalf("calls=%d delays=%v", calls, *delays)
	}
}

func TestGateway_ContextCancelAborts(t *testing.T) {
	g := NewGateway()
	g.SetSleep(func(ctx context.Context, d time.Duration) error {
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := g.Invoke(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("fail then cancel")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1 (no retry after cancel)", calls)
	}
}

func TestGateway_RealSleeperWaits(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	g := NewGateway()
	g.baseDelay = 10 * time.Millisecond

	start := time.Now()
	_ = g.Invoke(context.Background(), func(ctx context.Context) error {
		return errors.New("always")
	})
	// 累计退避 ≥ base*1 + base*2 / cumulative backoff ≥ base*(1+2)
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("elapsed=%v, want ≥30ms of cumulative backoff", elapsed)
	}
}
