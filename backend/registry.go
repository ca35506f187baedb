package backend

import (
	"fmt"
	"slices"
	"sync"
)

// Factory creates a width×height target.
type Factory func(width, height int) Target

// registry holds registered targets.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for target selection (first available wins).
	targetPriority = []string{NameRaster, NameSVG, NameRecord}
)

// Register registers a target factory with the given name.
// This is typically called from init() functions in target packages.
// If a target with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a target from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered target names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a target with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// New creates a target by name.
func New(name string, width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return factory(width, height), nil
}

// Default creates the best available target based on priority.
// Priority order: raster > svg > record, then the first other registered
// name in sorted order.
func Default(width, height int) (Target, error) {
	registryMu.RLock()
	name := ""
	for _, n := range targetPriority {
		if _, ok := factories[n]; ok {
			name = n
			break
		}
	}
	registryMu.RUnlock()
	if name == "" {
		if names := Available(); len(names) > 0 {
			name = names[0]
		}
	}

	if name == "" {
		return nil, ErrBackendNotAvailable
	}
	return New(name, width, height)
}
