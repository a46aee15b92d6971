package armstrong

import (
	"fmt"
	"sort"
	"sync"
)

// VariantFactory creates and caches Variant instances by name.
type VariantFactory interface {
	Get(name string) (Variant, error)
	List() []string
	Register(name string, creator func() Variant) error
	GetAll() map[string]Variant
}

// DefaultFactory is a thread-safe registry of variant creators that caches
// the instances it hands out.
type DefaultFactory struct {
	mu       sync.RWMutex
	creators map[string]func() Variant
	variants map[string]Variant
}

// NewDefaultFactory returns a factory with the "iterative" and "recursive"
// variants pre-registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators: make(map[string]func() Variant),
		variants: make(map[string]Variant),
	}
	_ = f.Register(IterativeName, func() Variant { return IterativeVariant{} })
	_ = f.Register(RecursiveName, func() Variant { return RecursiveVariant{} })
	return f
}

// Register adds or replaces a variant creator. A cached instance of the
// same name is dropped so the next Get uses the new creator.
func (f *DefaultFactory) Register(name string, creator func() Variant) error {
	if name == "" || creator == nil {
		return fmt.Errorf("armstrong: invalid registration for variant %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	delete(f.variants, name)
	return nil
}

// Get returns the cached variant registered under name, creating it on
// first use.
//
// Parameters:
//   - name: The registry key of the variant.
//
// Returns:
//   - Variant: The variant instance.
//   - error: An error if no variant is registered under name.
func (f *DefaultFactory) Get(name string) (Variant, error) {
	f.mu.RLock()
	if v, ok := f.variants[name]; ok {
		f.mu.RUnlock()
		return v, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.variants[name]; ok {
		return v, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant: %s", name)
	}
	v := creator()
	f.variants[name] = v
	return v, nil
}

// MustGet is like Get but panics when the variant is missing.
func (f *DefaultFactory) MustGet(name string) Variant {
	v, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("armstrong: required variant not found: %s", name))
	}
	return v
}

// Has reports whether a variant is registered under name.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.creators[name]
	return ok
}

// List returns the registered variant names in alphabetical order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll instantiates every registered variant and returns a copy of the
// cache.
func (f *DefaultFactory) GetAll() map[string]Variant {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name, creator := range f.creators {
		if _, ok := f.variants[name]; !ok {
			f.variants[name] = creator()
		}
	}
	out := make(map[string]Variant, len(f.variants))
	for name, v := range f.variants {
		out[name] = v
	}
	return out
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory.
func GlobalFactory() *DefaultFactory { return globalFactory }

// RegisterVariant registers a variant in the global factory.
func RegisterVariant(name string, creator func() Variant) error {
	return globalFactory.Register(name, creator)
}
