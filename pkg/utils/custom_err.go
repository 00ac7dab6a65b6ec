package utils

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrInferenceFailed     = errors.New("inference failed")
	ErrUnsupportedProvider = errors.New("unsupported inference provider")
	ErrUnsupportedBackend  = errors.New("unsupported store backend")
)
