package ops

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestPoller_RefreshesImmediatelyThenOnTicks(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d refreshes before deadline", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestPoller_KeepsGoingAfterFailure(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("backend down")
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d refreshes before deadline", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}
