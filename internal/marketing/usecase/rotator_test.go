package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRotatorNextWrapsAround(t *testing.T) {
	r := NewRotator(3, time.Minute)

	require.Equal(t, 0, r.Current())
	require.Equal(t, 1, r.Next())
	require.Equal(t, 2, r.Next())
	require.Equal(t, 0, r.Next())
}

func TestRotatorPrevWrapsAround(t *testing.T) {
	r := NewRotator(3, time.Minute)

	require.Equal(t, 2, r.Prev())
	require.Equal(t, 1, r.Prev())
	require.Equal(t, 0, r.Prev())
}

func TestRotatorEmptySetStaysPut(t *testing.T) {
	r := NewRotator(0, time.Minute)

	require.Equal(t, 0, r.Next())
	require.Equal(t, 0, r.Prev())
}

func TestRotatorAutoAdvances(t *testing.T) {
	r := NewRotator(4, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	start := r.Current()
	require.Eventually(t, func() bool {
		return r.Current() != start
	}, time.Second, time.Millisecond)
}

func TestRotatorRunStopsOnCancel(t *testing.T) {
	r := NewRotator(2, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
