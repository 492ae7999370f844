package binding

import (
	"context"
	"fmt"
	"strings"
)

// Model is a get/set accessor pair bound to one form field in a Store.
type Model struct {
	Form  string
	Field string

	store Store
	ns    Namespacer
}

// MapModels builds a model for every definition of the form
// modelName -> "form/field". The path is split on its first slash.
func MapModels(ns Namespacer, store Store, definitions map[string]string) (map[string]*Model, error) {
	models := make(map[string]*Model, len(definitions))
	for name, path := range definitions {
		form, field, ok := strings.Cut(path, "/")
		if !ok || form == "" || field == "" {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidPath, name, path)
		}
		models[name] = NewModel(ns, store, form, field)
	}
	return models, nil
}

// NewModel binds a single form field.
func NewModel(ns Namespacer, store Store, form, field string) *Model {
	return &Model{Form: form, Field: field, store: store, ns: ns}
}

// Set commits the value through the namespaced setFieldValue command.
func (m *Model) Set(ctx context.Context, value any) error {
	return m.store.Commit(ctx, Prefix(m.ns)+MutationSetFieldValue, FieldValue{
		Form:  m.Form,
		Field: m.Field,
		Value: value,
	})
}

// Get reads the field through the namespaced formValues getter.
// An unknown form reads as "".
func (m *Model) Get(ctx context.Context) (any, error) {
	values, err := m.store.Get(ctx, Prefix(m.ns)+GetterFormValues)
	if err != nil {
		return nil, err
	}
	form, ok := values[m.Form]
	if !ok || form == nil {
		return "", nil
	}
	return form[m.Field], nil
}
