package dispatcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Success(t *testing.T) {
	var called int32

	d := NewDispatcher()
	err := d.Write(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&called, 1)
		return nil
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, atomic.LoadInt32(&called))
}

func TestDispatcher_BackoffRetry(t *testing.T) {
	var called int32
	failures := 2

	d := NewDispatcher()
	err := d.Write(context.Background(), func(ctx context.Context) error {
		c := atomic.AddInt32(&called, 1)
		if c <= int32(failures) {
			return errors.New("fail")
		}
		return nil
	})
	require.NoError(t, err)

	assert.EqualValues(t, failures+1, atomic.LoadInt32(&called))
}

func TestDispatcher_AttemptsExhausted(t *testing.T) {
	var called int32

	d := NewDispatcher()
	require.NoError(t, d.SetAttempts(3))

	err := d.Write(context.Background(), func(ctx context.Context) error {
		atomic.AddInt32(&called, 1)
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, ErrBackoffTimeout)
	assert.EqualValues(t, 3, atomic.LoadInt32(&called))
}

func TestDispatcher_TimeoutGrows(t *testing.T) {
	var deadlines []time.Duration

	d := NewDispatcher()
	d.SetStartTimeout(100 * time.Millisecond)
	require.NoError(t, d.SetAttempts(3))

	_ = d.Write(context.Background(), func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		deadlines = append(deadlines, time.Until(deadline))
		return errors.New("fail")
	})

	require.Len(t, deadlines, 3)
	assert.Greater(t, deadlines[1], deadlines[0])
	assert.Greater(t, deadlines[2], deadlines[1])
}

func TestDispatcher_ContextCancel(t *testing.T) {
	var called int32

	d := NewDispatcher()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Write(ctx, func(ctx context.Context) error {
		atomic.AddInt32(&called, 1)
		// имитируем долгую операцию
		time.Sleep(50 * time.Millisecond)
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotZero(t, atomic.LoadInt32(&called))
}

func TestDispatcher_InvalidAttempts(t *testing.T) {
	d := NewDispatcher()
	assert.ErrorIs(t, d.SetAttempts(0), ErrInvalidAttempts)
}

func TestDispatch_WritesBucketToMatchingPartition(t *testing.T) {
	var (
		mu  sync.Mutex
		got = map[int][]string{}
	)

	buckets := [][]string{{"a", "d"}, {}, {"c"}}

	err := Dispatch(context.Background(), NewDispatcher(), buckets, func(ctx context.Context, partition int, items []string) error {
		mu.Lock()
		defer mu.Unlock()
		got[partition] = items
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[int][]string{0: {"a", "d"}, 2: {"c"}}, got)
}

func TestDispatch_ReturnsPartitionError(t *testing.T) {
	d := NewDispatcher()
	require.NoError(t, d.SetAttempts(1))

	boom := errors.New("boom")
	buckets := [][]int{{1}, {2}}

	err := Dispatch(context.Background(), d, buckets, func(ctx context.Context, partition int, items []int) error {
		if partition == 1 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, ErrBackoffTimeout)
	assert.Contains(t, err.Error(), "partition 1")
}

func TestDispatch_NilWriteFn(t *testing.T) {
	err := Dispatch[int](context.Background(), NewDispatcher(), [][]int{{1}}, nil)
	assert.ErrorIs(t, err, ErrNoBucketWriteFn)
}
