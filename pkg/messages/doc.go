// Package messages is the error-message registry used by the validation
// engine. Every rule name may have a dedicated rules.MessageFactory; rules
// without one fall back to the "default" factory, so replacing the default
// changes the message of every rule that has no dedicated entry.
//
// Messages can be supplied as Go functions or as templates loaded from a
// YAML catalog:
//
//	required: "{label} is required"
//	min: "{label} must be at least {0}"
//
// Templates understand {field}, {label}, {value} and positional rule
// arguments {0}, {1}, and so on. When a field has no explicit label one is
// derived from its name ("first_name" becomes "First Name").
package messages
