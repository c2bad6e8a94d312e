package photo

import "errors"

var (
	ErrRequestFailed          = errors.New("request failed")
	ErrBadStatus              = errors.New("unexpected response status")
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrTooLarge               = errors.New("image too large")
)
