package storage

import (
	"context"
	"sync"

	"github.com/rafaelq/go-authz/pkg/authz"
)

type ClientManager struct {
	Clients map[string]*authz.Client
	mu      sync.RWMutex
	maxSize int
}

func NewClientManager(maxSize int) *ClientManager {
	return &ClientManager{
		Clients: make(map[string]*authz.Client),
		maxSize: maxSize,
	}
}

func (m *ClientManager) Save(_ context.Context, client *authz.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Clients) >= m.maxSize {
		for id := range m.Clients {
			delete(m.Clients, id)
			break
		}
	}

	m.Clients[client.ID] = client
	return nil
}

func (m *ClientManager) Client(_ context.Context, id string) (*authz.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	client, exists := m.Clients[id]
	if !exists {
		return nil, authz.ErrNotFound
	}

	return client, nil
}

func (m *ClientManager) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Clients, id)
	return nil
}

var _ authz.ClientStore = NewClientManager(0)
