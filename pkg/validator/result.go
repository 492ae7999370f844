package validator

import (
	"maps"
	"slices"
)

// Result is the outcome of validating one field: nil when every rule passed,
// otherwise the failure messages in rule declaration order.
type Result []string

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r) == 0
}

// FormResult maps field names to their results. Valid fields map to nil.
type FormResult map[string]Result

// Valid reports whether every field passed.
func (fr FormResult) Valid() bool {
	for _, r := range fr {
		if !r.Valid() {
			return false
		}
	}
	return true
}

// Invalid returns the names of failing fields, sorted.
func (fr FormResult) Invalid() []string {
	var names []string
	for _, name := range slices.Sorted(maps.Keys(fr)) {
		if !fr[name].Valid() {
			names = append(names, name)
		}
	}
	return names
}

// Err converts the result into ValidationErrors, or nil when the form is valid.
// Fields are ordered by name, messages by declaration.
func (fr FormResult) Err() error {
	var errs ValidationErrors
	for _, name := range fr.Invalid() {
		for _, msg := range fr[name] {
			errs.Add(ValidationError{Field: name, Message: msg})
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
