package formulate

import "errors"

var (
	// ErrInvalidOptions is returned when options cannot be applied.
	ErrInvalidOptions = errors.New("formulate: invalid options")

	// ErrMissingTag is returned when a required component tag name is empty.
	ErrMissingTag = errors.New("formulate: component tag name is empty")

	// ErrComponentRegistration is returned when the host rejects a component.
	ErrComponentRegistration = errors.New("formulate: failed to register component")
)
