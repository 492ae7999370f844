package messages

import "errors"

var (
	// ErrFailedToParseCatalog is returned when a YAML message catalog cannot be decoded.
	ErrFailedToParseCatalog = errors.New("messages: failed to parse catalog")

	// ErrEmptyTemplate is returned for a catalog entry without text.
	ErrEmptyTemplate = errors.New("messages: empty message template")
)
