package mask

import "errors"

var (
	ErrPayloadTooLarge   = errors.New("image too large")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrFetchFailed       = errors.New("failed to fetch image")
)
