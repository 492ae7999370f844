package messages

import (
	"maps"
	"sync"

	"github.com/dmitrymomot/formulate/pkg/rules"
)

// DefaultKey names the fallback factory.
const DefaultKey = "default"

// Registry resolves the message factory for a rule name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]rules.MessageFactory
}

// NewRegistry creates a registry from the given factories.
// A missing "default" entry is filled with the built-in fallback.
func NewRegistry(factories map[string]rules.MessageFactory) *Registry {
	r := &Registry{factories: make(map[string]rules.MessageFactory, len(factories)+1)}
	maps.Copy(r.factories, factories)
	if r.factories[DefaultKey] == nil {
		r.factories[DefaultKey] = Default
	}
	return r
}

// Defaults returns a registry with messages for every built-in rule.
func Defaults() *Registry {
	return NewRegistry(builtin())
}

// Factory returns the factory registered for rule, or the default factory.
func (r *Registry) Factory(rule string) rules.MessageFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f := r.factories[rule]; f != nil {
		return f
	}
	return r.factories[DefaultKey]
}

// Has reports whether rule has a dedicated factory.
func (r *Registry) Has(rule string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories[rule] != nil
}

// Set registers a factory for rule. A nil factory removes the entry,
// except for the default which can only be replaced.
func (r *Registry) Set(rule string, f rules.MessageFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f == nil {
		if rule != DefaultKey {
			delete(r.factories, rule)
		}
		return
	}
	r.factories[rule] = f
}

// SetDefault replaces the fallback factory.
func (r *Registry) SetDefault(f rules.MessageFactory) {
	r.Set(DefaultKey, f)
}

// Merge shallow-merges factories over the registry; incoming entries win.
func (r *Registry) Merge(factories map[string]rules.MessageFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for rule, f := range factories {
		if f != nil {
			r.factories[rule] = f
		}
	}
}
