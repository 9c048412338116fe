package index

import (
	"sort"
	"sync"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

var (
	// ErrMissingBackend is returned if no default Tree backend was registered.
	ErrMissingBackend = ierrors.New("no ordered index backend available")

	// ErrUnknownBackend is returned if a Tree backend is requested by a name that was never registered.
	ErrUnknownBackend = ierrors.New("unknown ordered index backend")
)

// Factory creates an empty Tree that orders its items with the given Comparator.
type Factory func(comparator Comparator[any]) Tree[any]

var (
	backends       = make(map[string]Factory)
	defaultBackend string
	backendsMutex  sync.RWMutex
)

// Register makes a Tree backend available under the given name. It panics if the name was registered twice or if the
// factory is nil.
func Register(name string, factory Factory) {
	backendsMutex.Lock()
	defer backendsMutex.Unlock()

	register(name, factory)
}

// RegisterDefault registers a Tree backend and makes it the one that is used if no backend is requested explicitly.
func RegisterDefault(name string, factory Factory) {
	backendsMutex.Lock()
	defer backendsMutex.Unlock()

	register(name, factory)
	defaultBackend = name
}

// Lookup returns the Factory of the backend with the given name.
func Lookup(name string) (Factory, error) {
	backendsMutex.RLock()
	defer backendsMutex.RUnlock()

	factory, exists := backends[name]
	if !exists {
		return nil, ierrors.Wrapf(ErrUnknownBackend, "backend %q is not registered", name)
	}

	return factory, nil
}

// Default returns the name and the Factory of the default backend.
func Default() (string, Factory, error) {
	backendsMutex.RLock()
	defer backendsMutex.RUnlock()

	if defaultBackend == "" {
		return "", nil, ierrors.Wrap(ErrMissingBackend, "no default backend registered")
	}

	return defaultBackend, backends[defaultBackend], nil
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	backendsMutex.RLock()
	defer backendsMutex.RUnlock()

	names := lo.Keys(backends)
	sort.Strings(names)

	return names
}

func register(name string, factory Factory) {
	if factory == nil {
		panic("index: Register factory is nil")
	}

	if _, exists := backends[name]; exists {
		panic("index: Register called twice for backend " + name)
	}

	backends[name] = factory
}
