package producer_batcher_test

import (
	"ay-events-spreader/internal/producer_batcher"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]int
}

func (r *recorder) flush(batch []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, batch)
}

func (r *recorder) snapshot() [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]int(nil), r.batches...)
}

// TestSizeModeFlush проверяет, что SizeMode вызывает flushFn при достижении flushSize.
func TestSizeModeFlush(t *testing.T) {
	r := &recorder{}

	b, err := producer_batcher.NewBatcher[int](r.flush)
	require.NoError(t, err)
	require.NoError(t, b.SetFlushSize(3))

	for i := 1; i <= 7; i++ {
		require.NoError(t, b.Push(i))
	}

	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, r.snapshot())

	b.Close()
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, r.snapshot())
}

// TestTimeModeFlush проверяет, что TimeMode вызывает flushFn по таймеру.
func TestTimeModeFlush(t *testing.T) {
	r := &recorder{}

	b, err := producer_batcher.NewBatcher[int](r.flush)
	require.NoError(t, err)
	b.SetFlushTime(20 * time.Millisecond)
	b.SetMode(producer_batcher.TimeMode)
	defer b.Close()

	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))

	assert.Eventually(t, func() bool {
		return len(r.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, [][]int{{1, 2}}, r.snapshot())
}

// TestCloseFlush проверяет, что Close отправляет остаток сообщений.
func TestCloseFlush(t *testing.T) {
	r := &recorder{}

	b, err := producer_batcher.NewBatcher[int](r.flush)
	require.NoError(t, err)
	require.NoError(t, b.SetFlushSize(5))

	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))

	b.Close()
	b.Close()

	assert.Equal(t, [][]int{{1, 2}}, r.snapshot())
}

// TestPushAfterClose проверяет, что Push после Close возвращает ошибку.
func TestPushAfterClose(t *testing.T) {
	r := &recorder{}

	b, err := producer_batcher.NewBatcher[int](r.flush)
	require.NoError(t, err)
	b.Close()

	assert.ErrorIs(t, b.Push(1), producer_batcher.ErrBatchStopped)
	assert.Empty(t, r.snapshot())
}

func TestInvalidArgs(t *testing.T) {
	_, err := producer_batcher.NewBatcher[int](nil)
	assert.ErrorIs(t, err, producer_batcher.ErrNoFlushFn)

	b, err := producer_batcher.NewBatcher[int](func([]int) {})
	require.NoError(t, err)
	defer b.Close()

	assert.ErrorIs(t, b.SetFlushSize(0), producer_batcher.ErrInvalidFlushSize)
}
