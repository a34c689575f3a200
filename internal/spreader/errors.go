package spreader

import "errors"

var (
	ErrInvalidCount = errors.New("invalid bucket count")
)
