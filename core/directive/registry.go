package directive

import (
	"fmt"
	"sync"

	"github.com/asaidimu/go-weft/core"
	"go.uber.org/zap"
)

// Registry holds the functions callable from function-call directives, keyed
// by their fully qualified name. Registration happens at process start;
// lookups during evaluation take only a read lock, so concurrent evaluation
// is safe once the registry is populated.
type Registry struct {
	functions map[string]core.Function
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewRegistry creates an empty function registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		functions: make(map[string]core.Function),
		logger:    logger,
	}
}

// Register adds a function under its qualified name.
func (r *Registry) Register(name string, fn core.Function) error {
	if name == "" {
		return fmt.Errorf("function name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("function %q cannot be nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions[name] = fn
	r.logger.Info("Registered template function", zap.String("name", name))
	return nil
}

// RegisterAll registers every function in the map.
func (r *Registry) RegisterAll(fmap core.FunctionMap) error {
	for name, fn := range fmap {
		if err := r.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// Lookup retrieves a function by its qualified name.
func (r *Registry) Lookup(name string) (core.Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// Names returns the qualified names of all registered functions.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	return names
}
