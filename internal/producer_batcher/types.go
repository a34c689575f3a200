package producer_batcher

import "errors"

type BatchMode string

const (
	SizeMode BatchMode = "size"
	TimeMode BatchMode = "time"
)

type Flush[T any] = func(items []T)

var (
	ErrBatchStopped     = errors.New("batcher stopped")
	ErrInvalidFlushSize = errors.New("invalid flush size")
	ErrNoFlushFn        = errors.New("flush function not found")
)
