package async

import "errors"

var (
	ErrNilFuture = errors.New("async: nil future")
	ErrTimeout   = errors.New("async: operation timed out waiting for future completion")
)
