package taskboard

import "errors"

var (
	ErrUnknownBucket = errors.New("unknown bucket key")
)
