package utils

import "errors"

var (
	ErrPlaceNotFound       = errors.New("place not found")
	ErrPlaceAlreadyExists  = errors.New("place already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
	ErrEmbeddingFailed     = errors.New("embedding generation failed")
	ErrSentimentFailed     = errors.New("sentiment inference failed")
	ErrUnsupportedProvider = errors.New("unsupported provider")
)
