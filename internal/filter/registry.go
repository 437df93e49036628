package filter

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/HerbHall/netclass/pkg/models"
)

// ErrUnknownFilter is returned when applying a name nobody registered.
var ErrUnknownFilter = errors.New("unknown filter")

// Registry holds filters by name.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
	order   []string
	logger  *zap.Logger
}

// NewRegistry creates an empty filter registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		filters: make(map[string]Filter),
		logger:  logger,
	}
}

// Register adds a filter to the registry.
func (r *Registry) Register(f Filter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := f.Name()
	if name == "" {
		return errors.New("filter name must not be empty")
	}
	if _, exists := r.filters[name]; exists {
		return fmt.Errorf("filter %q already registered", name)
	}

	r.filters[name] = f
	r.order = append(r.order, name)
	r.logger.Debug("filter registered", zap.String("name", name))
	return nil
}

// Get returns a filter by name.
func (r *Registry) Get(name string) (Filter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	return f, ok
}

// All returns all registered filters in registration order.
func (r *Registry) All() []Filter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Filter, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.filters[name])
	}
	return result
}

// Names returns the registered filter names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Apply runs the named filter over facts. Filter errors are returned as is.
func (r *Registry) Apply(name string, facts *models.Facts) (any, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}

	r.logger.Debug("applying filter", zap.String("name", name), zap.Int("facts", facts.Len()))
	out, err := f.Apply(facts)
	if err != nil {
		r.logger.Debug("filter failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return out, nil
}
