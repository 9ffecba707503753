package assetpath

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Factory constructs a Resolver from a Config
type Factory func(Config) (Resolver, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a resolver available under the given URI scheme.  It panics
// if the scheme is registered twice, or if the factory is nil.
func Register(scheme string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f == nil {
		panic("assetpath: Register factory is nil")
	}
	if _, dup := registry[scheme]; dup {
		panic("assetpath: Register called twice for scheme " + scheme)
	}
	registry[scheme] = f
}

// New constructs the resolver registered for the given scheme
func New(scheme string, cfg Config) (Resolver, error) {
	registryMu.RLock()
	f, ok := registry[scheme]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.Errorf("no resolver registered for scheme %q (forgotten import?)", scheme)
	}

	return f(cfg)
}

// Schemes lists the registered URI schemes, sorted
func Schemes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	schemes := make([]string, 0, len(registry))
	for s := range registry {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}
