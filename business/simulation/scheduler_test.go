package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type manualTicker struct {
	ch      chan time.Time
	stopped bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               { m.stopped = true }

func TestScheduler_Run(t *testing.T) {
	ticker := &manualTicker{ch: make(chan time.Time)}
	var gotInterval time.Duration
	s := NewScheduler("test", time.Minute, func(d time.Duration) Ticker {
		gotInterval = d
		return ticker
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	calls := 0
	job := func(context.Context) error {
		calls++
		defer func() { done <- struct{}{} }()
		if calls == 2 {
			return errors.New("transient")
		}
		return nil
	}

	result := make(chan int)
	go func() { result <- s.Run(ctx, job) }()

	for i := 0; i < 3; i++ {
		ticker.ch <- testNow
		<-done
	}
	cancel()

	select {
	case ok := <-result:
		assert.Equal(t, 2, ok)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, time.Minute, gotInterval)
	assert.True(t, ticker.stopped)
}

func TestScheduler_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScheduler("idle", time.Hour, nil)

	assert.Equal(t, 0, s.Run(ctx, func(context.Context) error { return nil }))
}
