package validator

import "errors"

// ErrRuleFailed is returned when a rule could not determine validity, for
// example when an asynchronous check errors or panics. It is distinct from a
// field being invalid.
var ErrRuleFailed = errors.New("validator: rule could not be evaluated")
