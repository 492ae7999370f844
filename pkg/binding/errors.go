package binding

import "errors"

var (
	// ErrInvalidPath is returned for a model definition that is not "form/field".
	ErrInvalidPath = errors.New("binding: model path must be \"form/field\"")

	// ErrUnknownMutation is returned by stores for unsupported commands.
	ErrUnknownMutation = errors.New("binding: unknown mutation")

	// ErrUnknownGetter is returned by stores for unsupported queries.
	ErrUnknownGetter = errors.New("binding: unknown getter")

	// ErrInvalidModule is returned by the Redis store for module names it cannot key.
	ErrInvalidModule = errors.New("binding: invalid module name")

	// ErrFailedToEncodeValue is returned when a value cannot be serialized for storage.
	ErrFailedToEncodeValue = errors.New("binding: failed to encode value")

	// ErrFailedToDecodeValue is returned when a stored value cannot be deserialized.
	ErrFailedToDecodeValue = errors.New("binding: failed to decode value")
)
