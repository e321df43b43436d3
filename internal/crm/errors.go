package crm

import "errors"

var (
	ErrUnknownEntitySet = errors.New("unknown entity set")
	ErrRecordNotFound   = errors.New("record not found")
	ErrEmptyPayload     = errors.New("payload must not be empty")
)
