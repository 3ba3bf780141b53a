package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunOnce(t *testing.T) {
	w := NewInstance("test", 0, time.Minute)

	called := false
	require.True(t, w.RunOnce(context.Background(), func(ctx context.Context) { called = true }))
	require.True(t, called)

	require.False(t, w.RunOnce(context.Background(), func(ctx context.Context) { panic("boom") }))
}

func TestRun(t *testing.T) {
	t.Run("повторяет задачу после паники и останавливается по контексту", func(t *testing.T) {
		w := NewInstance("test", 0, time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())

		var runs atomic.Int32
		done := make(chan struct{})
		go func() {
			w.Run(ctx, func(ctx context.Context) {
				if runs.Add(1) == 1 {
					panic("first run")
				}
			})
			close(done)
		}()

		require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})
}
