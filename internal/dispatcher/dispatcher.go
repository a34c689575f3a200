package dispatcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Dispatcher struct {
	attempts     int
	startTimeout time.Duration
}

// NewDispatcher создает и возвращает новый экземпляр Dispatcher
// с параметрами повторов по умолчанию.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		attempts:     backoffAttemptCount,
		startTimeout: startBackoffTimeout,
	}
}

// SetAttempts задаёт максимальное число попыток записи одной корзины.
func (d *Dispatcher) SetAttempts(count int) error {
	if count <= 0 {
		return ErrInvalidAttempts
	}

	d.attempts = count
	return nil
}

// SetStartTimeout задаёт таймаут первой попытки.
func (d *Dispatcher) SetStartTimeout(timeout time.Duration) {
	d.startTimeout = timeout
}

// Dispatch записывает набор корзин: корзина i уходит в партицию i.
// Пустые корзины пропускаются, непустые пишутся параллельно,
// каждая со своими повторами. Возвращается первая ошибка.
func Dispatch[T any](ctx context.Context, d *Dispatcher, buckets [][]T, writeFn BucketWriteFn[T]) error {
	if writeFn == nil {
		return ErrNoBucketWriteFn
	}

	g, ctx := errgroup.WithContext(ctx)

	for partition, items := range buckets {
		if len(items) == 0 {
			continue
		}

		g.Go(func() error {
			err := d.Write(ctx, func(ctx context.Context) error {
				return writeFn(ctx, partition, items)
			})
			if err != nil {
				return fmt.Errorf("partition %d: %w", partition, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error(err.Error())
		return err
	}

	return nil
}

// Write выполняет запись с использованием механизма повторных попыток (backoff).
// Принимает контекст для управления отменой и функцию записи writeFn.
func (d *Dispatcher) Write(ctx context.Context, writeFn WriteFn) error {
	return d.writeWithBackoff(ctx, writeFn)
}

// writeWithBackoff реализует логику повторных попыток записи с увеличением таймаута.
// При ошибке выполнения singleWrite таймаут увеличивается согласно коэффициенту backoffMultiply.
// Если контекст отменен — возвращается ошибка контекста.
// Если превышено количество попыток — возвращается ErrBackoffTimeout.
func (d *Dispatcher) writeWithBackoff(ctx context.Context, writeFn WriteFn) error {
	timeout := d.startTimeout

	for range d.attempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.singleWrite(ctx, timeout, writeFn); err != nil {
			timeout = time.Duration(float64(timeout) * backoffMultiply)
			continue
		}

		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return ErrBackoffTimeout
}

// singleWrite выполняет одну попытку записи с ограничением по времени.
// Создает дочерний контекст с таймаутом и вызывает переданную функцию writeFn.
// В случае ошибки логирует её и возвращает вызывающему коду.
func (d *Dispatcher) singleWrite(ctx context.Context, timeout time.Duration, writeFn WriteFn) error {
	ctxT, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := writeFn(ctxT); err != nil {
		zap.L().Error(err.Error())
		return err
	}

	return nil
}
