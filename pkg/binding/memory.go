package binding

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

type memoryModule struct {
	values FormValues
	errors FormValues
}

// MemoryStore is an in-process Store partitioned by module namespace.
type MemoryStore struct {
	mu      sync.RWMutex
	modules map[string]*memoryModule
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{modules: make(map[string]*memoryModule)}
}

func (s *MemoryStore) module(name string) *memoryModule {
	m, ok := s.modules[name]
	if !ok {
		m = &memoryModule{values: FormValues{}, errors: FormValues{}}
		s.modules[name] = m
	}
	return m
}

// Commit applies setFieldValue, setFieldErrors or resetForm.
func (s *MemoryStore) Commit(_ context.Context, mutation string, payload FieldValue) error {
	moduleName, op := splitName(mutation)

	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.module(moduleName)

	switch op {
	case MutationSetFieldValue:
		setField(m.values, payload)
	case MutationSetFieldErrors:
		setField(m.errors, payload)
	case MutationResetForm:
		delete(m.values, payload.Form)
		delete(m.errors, payload.Form)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMutation, mutation)
	}
	return nil
}

// Get answers formValues and formErrors with a copy of the module state.
func (s *MemoryStore) Get(_ context.Context, getter string) (FormValues, error) {
	moduleName, op := splitName(getter)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var src FormValues
	if m, ok := s.modules[moduleName]; ok {
		switch op {
		case GetterFormValues:
			src = m.values
		case GetterFormErrors:
			src = m.errors
		}
	}
	if op != GetterFormValues && op != GetterFormErrors {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGetter, getter)
	}

	out := make(FormValues, len(src))
	for form, fields := range src {
		out[form] = maps.Clone(fields)
	}
	return out, nil
}

func setField(dst FormValues, payload FieldValue) {
	form, ok := dst[payload.Form]
	if !ok {
		form = make(map[string]any)
		dst[payload.Form] = form
	}
	form[payload.Field] = payload.Value
}
