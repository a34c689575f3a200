package dispatcher

import "context"

// BucketWriteFn записывает содержимое корзины в партицию с тем же индексом.
type BucketWriteFn[T any] = func(ctx context.Context, partition int, items []T) error

type WriteFn = func(ctx context.Context) error
