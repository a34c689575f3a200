package sender

import "errors"

var (
	ErrPartitionMismatch = errors.New("partition out of range")
	ErrNoPartitions      = errors.New("no partition writers")
)
