package probability

import (
	"fmt"
	"sort"
	"sync"

	"github.com/oddsmith/punt/models"
)

// Registry maps market lanes to their probability sources. Lanes are
// registered at construction time; an offer for an unregistered lane is
// rejected before any state is touched.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register binds a source to a market lane, replacing any previous binding.
func (r *Registry) Register(market string, src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[market] = src
}

// Resolve returns the source registered for the market lane.
func (r *Registry) Resolve(market string) (Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.sources[market]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownMarket, market)
	}
	return src, nil
}

// Markets returns the registered lanes in sorted order.
func (r *Registry) Markets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.sources))
	for market := range r.sources {
		out = append(out, market)
	}
	sort.Strings(out)
	return out
}
