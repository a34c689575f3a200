package producer_batcher

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Batcher накапливает элементы и отдаёт их пачками во flushFn.
// flushFn вызывается синхронно и под flushMu, поэтому пачки приходят
// в том же порядке, в котором элементы были добавлены.
type Batcher[T any] struct {
	mode      BatchMode
	flushTime time.Duration
	flushSize int
	flushFn   Flush[T]

	buffer []T
	mutex  sync.Mutex

	flushMu sync.Mutex

	stopCh  chan struct{}
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewBatcher создает новый батчер с функцией flushFn.
func NewBatcher[T any](flushFn Flush[T]) (*Batcher[T], error) {
	if flushFn == nil {
		zap.L().Error(ErrNoFlushFn.Error())
		return nil, ErrNoFlushFn
	}

	b := &Batcher[T]{
		mode:      defaultMode,
		flushTime: defaultFlushTime,
		flushSize: defaultFlushSize,
		flushFn:   flushFn,
		buffer:    make([]T, 0, bufferSize),
	}

	b.start()
	return b, nil
}

// SetFlushTime устанавливает интервал для TimeMode.
// Новый интервал применяется при следующем SetMode.
func (b *Batcher[T]) SetFlushTime(duration time.Duration) {
	b.flushTime = duration
}

// SetFlushSize устанавливает размер батча для SizeMode.
func (b *Batcher[T]) SetFlushSize(size int) error {
	if size <= 0 {
		zap.L().Error(ErrInvalidFlushSize.Error(), zap.Int("size", size))
		return ErrInvalidFlushSize
	}

	b.mutex.Lock()
	b.flushSize = size
	b.mutex.Unlock()

	return nil
}

// SetMode меняет режим батчинга: текущий буфер сбрасывается,
// таймер перезапускается, если нужно.
func (b *Batcher[T]) SetMode(mode BatchMode) {
	if b.mode == mode {
		return
	}

	b.Close()
	b.mode = mode
	b.start()
}

// Push добавляет элемент в батчер.
func (b *Batcher[T]) Push(item T) error {
	if b.stopped.Load() {
		zap.L().Error(ErrBatchStopped.Error())
		return ErrBatchStopped
	}

	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	b.mutex.Lock()
	b.buffer = append(b.buffer, item)

	var items []T
	if b.mode == SizeMode && len(b.buffer) >= b.flushSize {
		items = b.flushBuffer()
	}
	b.mutex.Unlock()

	if len(items) > 0 {
		b.flushFn(items)
	}

	return nil
}

// start запускает таймерную горутину для TimeMode.
func (b *Batcher[T]) start() {
	b.stopCh = make(chan struct{})
	b.stopped.Store(false)

	if b.mode == TimeMode {
		b.wg.Add(1)
		go b.timeModeProcess(b.stopCh)
	}
}

// timeModeProcess — цикл таймера для TimeMode.
func (b *Batcher[T]) timeModeProcess(stopCh <-chan struct{}) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushTime)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.flush()
		case <-stopCh:
			return
		}
	}
}

// flush синхронно отдаёт накопленный буфер во flushFn.
func (b *Batcher[T]) flush() {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	b.mutex.Lock()
	items := b.flushBuffer()
	b.mutex.Unlock()

	if len(items) > 0 {
		b.flushFn(items)
	}
}

// flushBuffer копирует и очищает буфер.
func (b *Batcher[T]) flushBuffer() []T {
	items := make([]T, len(b.buffer))
	copy(items, b.buffer)
	b.buffer = b.buffer[:0]
	return items
}

// Close останавливает батчер и сбрасывает остаток буфера.
// Повторный вызов ничего не делает.
func (b *Batcher[T]) Close() {
	if b.stopped.Swap(true) {
		return
	}

	close(b.stopCh)
	b.wg.Wait()

	b.flush()
}
