package util

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel_RunsAll(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}

	err := Parallel(context.Background(), []int{1, 2, 3, 4, 5}, 2, func(_ context.Context, n int) error {
		mu.Lock()
		defer mu.Unlock()
		seen[n] = true
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 5)
}

func TestParallel_Empty(t *testing.T) {
	called := false
	err := Parallel(context.Background(), []string(nil), 4, func(context.Context, string) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestParallel_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32

	inputs := make([]int, 100)
	err := Parallel(context.Background(), inputs, 1, func(context.Context, int) error {
		calls.Add(1)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), calls.Load())
}

func TestParallel_ParentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Parallel(ctx, []int{1, 2, 3}, 2, func(ctx context.Context, _ int) error {
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}
