package spreader

import (
	"iter"
	"slices"

	"go.uber.org/zap"
)

// Spreader раскладывает элементы последовательности по фиксированному
// числу корзин по кругу: элемент с позицией p попадает в корзину p % count.
// Количество корзин задаётся один раз при создании.
type Spreader[T any] struct {
	count int
}

// New создаёт Spreader на count корзин.
// Возвращает ErrInvalidCount, если count <= 0.
func New[T any](count int) (*Spreader[T], error) {
	if count <= 0 {
		zap.L().Error(ErrInvalidCount.Error(), zap.Int("count", count))
		return nil, ErrInvalidCount
	}

	return &Spreader[T]{count: count}, nil
}

func (s *Spreader[T]) Count() int {
	return s.count
}

// Spread полностью вычитывает src и возвращает ровно Count() корзин.
func (s *Spreader[T]) Spread(src iter.Seq[T]) [][]T {
	buckets := newBuckets[T](s.count)
	spread(src, buckets)
	return buckets
}

// SpreadSlice — то же, что Spread, для готового слайса.
func (s *Spreader[T]) SpreadSlice(items []T) [][]T {
	return s.Spread(slices.Values(items))
}

// Spread раскладывает src по size корзинам.
// При size <= 0 возвращает ErrInvalidCount, не трогая src.
func Spread[T any](src iter.Seq[T], size int) ([][]T, error) {
	if size <= 0 {
		zap.L().Error(ErrInvalidCount.Error(), zap.Int("size", size))
		return nil, ErrInvalidCount
	}

	buckets := newBuckets[T](size)
	spread(src, buckets)

	return buckets, nil
}

// SpreadInto раскладывает src по корзинам dst, длина которых известна
// вызывающему заранее, обычно это arr[:] от массива [N][]T.
// Прежнее содержимое корзин отбрасывается, длина dst не меняется.
// При len(dst) == 0 возвращает ErrInvalidCount, не трогая src.
func SpreadInto[T any](src iter.Seq[T], dst [][]T) error {
	if len(dst) == 0 {
		zap.L().Error(ErrInvalidCount.Error(), zap.Int("size", 0))
		return ErrInvalidCount
	}

	for i := range dst {
		dst[i] = []T{}
	}
	spread(src, dst)

	return nil
}

func newBuckets[T any](count int) [][]T {
	buckets := make([][]T, count)
	for i := range buckets {
		buckets[i] = []T{}
	}
	return buckets
}

// spread — общий цикл распределения; len(buckets) > 0.
func spread[T any](src iter.Seq[T], buckets [][]T) {
	c := newCycle(len(buckets))

	for item := range src {
		i := c.next()
		buckets[i] = append(buckets[i], item)
	}
}
