package rules

import (
	"maps"
	"slices"
	"sync"
)

// Registry maps rule names to implementations.
// It is safe for concurrent use; lookups are expected to vastly outnumber writes.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates a registry seeded with the given rules.
func NewRegistry(rules map[string]Rule) *Registry {
	r := &Registry{rules: make(map[string]Rule, len(rules))}
	maps.Copy(r.rules, rules)
	return r
}

// Defaults returns a fresh registry holding the built-in rules.
func Defaults() *Registry {
	return NewRegistry(map[string]Rule{
		"required":     Sync(Required),
		"email":        Sync(Email),
		"confirmed":    Sync(Confirmed),
		"number":       Sync(Number),
		"in":           Sync(In),
		"notIn":        Sync(NotIn),
		"min":          Sync(Min),
		"max":          Sync(Max),
		"between":      Sync(Between),
		"alpha":        Sync(Alpha),
		"alphanumeric": Sync(Alphanumeric),
		"url":          Sync(URL),
		"matches":      Sync(Matches),
		"uuid":         Sync(UUID),
		"slug":         Sync(Slug),
		"date":         Sync(Date),
		"before":       Sync(Before),
		"after":        Sync(After),
	})
}

// Register adds or replaces a single rule.
func (r *Registry) Register(name string, rule Rule) error {
	if name == "" || rule.IsZero() {
		return ErrInvalidRule
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[name] = rule
	return nil
}

// Merge shallow-merges rules over the registry; incoming entries win.
// Zero rules are ignored.
func (r *Registry) Merge(rules map[string]Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, rule := range rules {
		if name == "" || rule.IsZero() {
			continue
		}
		r.rules[name] = rule
	}
}

// Lookup resolves a rule by exact name.
func (r *Registry) Lookup(name string) (Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	if !ok {
		return Rule{}, &UnknownRuleError{Rule: name}
	}
	return rule, nil
}

// Has reports whether a rule is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[name]
	return ok
}

// Names returns registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.rules))
}
