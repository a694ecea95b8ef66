package storage

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/rafaelq/go-authz/pkg/authz"
)

// InteractionManager stores suspended authorization state with a TTL. The
// cache evicts expired entries on its own, so an expired correlation ID
// behaves exactly like one that never existed.
type InteractionManager struct {
	cache *cache.Cache
	// mu makes Consume's load and delete a single step. The cache is safe
	// for concurrent use but has no combined get-and-delete.
	mu sync.Mutex
}

func NewInteractionManager(lifetime time.Duration) *InteractionManager {
	return &InteractionManager{
		cache: cache.New(lifetime, 2*lifetime),
	}
}

func (m *InteractionManager) Save(_ context.Context, state *authz.InteractionState) error {
	m.cache.SetDefault(state.CorrelationID, state)
	return nil
}

func (m *InteractionManager) Consume(_ context.Context, correlationID string) (*authz.InteractionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, exists := m.cache.Get(correlationID)
	if !exists {
		return nil, authz.ErrNotFound
	}
	m.cache.Delete(correlationID)

	return value.(*authz.InteractionState), nil
}

var _ authz.InteractionStore = NewInteractionManager(0)
