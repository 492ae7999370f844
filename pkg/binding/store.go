package binding

import (
	"context"
	"strings"
)

// Command and getter names understood by the bundled stores.
const (
	MutationSetFieldValue  = "setFieldValue"
	MutationSetFieldErrors = "setFieldErrors"
	MutationResetForm      = "resetForm"

	GetterFormValues = "formValues"
	GetterFormErrors = "formErrors"
)

// FieldValue is the payload of field-level commands.
type FieldValue struct {
	Form  string `json:"form"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

// FormValues maps form name to field name to value.
type FormValues map[string]map[string]any

// Store is the external key-value store contract. Implementations are
// expected to be safe for concurrent use.
type Store interface {
	Commit(ctx context.Context, mutation string, payload FieldValue) error
	Get(ctx context.Context, getter string) (FormValues, error)
}

// Namespacer supplies the store module namespace; empty means none.
type Namespacer interface {
	Namespace() string
}

// NamespaceFunc adapts a function to Namespacer.
type NamespaceFunc func() string

func (f NamespaceFunc) Namespace() string { return f() }

// Prefix returns "<module>/" or an empty string.
func Prefix(ns Namespacer) string {
	if ns == nil {
		return ""
	}
	if module := ns.Namespace(); module != "" {
		return module + "/"
	}
	return ""
}

// splitName separates "<module>/<name>" at the last slash.
func splitName(name string) (module, op string) {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
