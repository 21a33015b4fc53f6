package conform

import (
	"fmt"
	"strings"
	"sync"
)

// Registry maps shorthand base names to validators. The built-in tokens
// live in DefaultRegistry; custom leaf validators registered here become
// usable as shorthand bases with the full suffix grammar ("money?[]").
type Registry struct {
	mu   sync.RWMutex
	base map[string]Validator
}

func builtins() map[string]Validator {
	return map[string]Validator{
		"string":                   String(),
		"non-empty string":         NonEmptyString(),
		"trimmed string":           TrimmedString(),
		"trimmed non-empty string": TrimmedNonEmptyString(),
		"uuid":                     UUID(),
		"int":                      Int(),
		"integer":                  Int(),
		"float":                    Float(),
		"boolean":                  Bool(),
	}
}

// NewRegistry returns a registry pre-populated with the built-in tokens.
func NewRegistry() *Registry {
	return &Registry{base: builtins()}
}

// DefaultRegistry serves shorthand resolution for Object validators built
// without an explicit WithRegistry option.
var DefaultRegistry = NewRegistry()

// Register adds a named validator. Names must not be empty, collide with a
// registered name, or contain suffix grammar characters.
func (r *Registry) Register(name string, v Validator) error {
	if name == "" {
		return fmt.Errorf("validator name cannot be empty")
	}
	if strings.ContainsAny(name, "?[]") {
		return fmt.Errorf("validator name %q contains shorthand suffix characters", name)
	}
	if v == nil {
		return fmt.Errorf("validator for %q cannot be nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.base[name]; exists {
		return fmt.Errorf("validator %q already registered", name)
	}
	r.base[name] = v
	return nil
}

// Lookup returns the validator registered under a base name.
func (r *Registry) Lookup(name string) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.base[name]
	return v, ok
}

// Names returns all registered base names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.base))
	for name := range r.base {
		names = append(names, name)
	}
	return names
}
