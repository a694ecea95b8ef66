package storage

import (
	"context"
	"sync"

	"github.com/rafaelq/go-authz/pkg/authz"
)

type ConsentManager struct {
	Decisions map[string]*authz.ConsentDecision
	mu        sync.RWMutex
	maxSize   int
}

func NewConsentManager(maxSize int) *ConsentManager {
	return &ConsentManager{
		Decisions: make(map[string]*authz.ConsentDecision),
		maxSize:   maxSize,
	}
}

func (m *ConsentManager) Save(_ context.Context, decision *authz.ConsentDecision) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Decisions) >= m.maxSize {
		removeOldest(m.Decisions, func(d *authz.ConsentDecision) int64 {
			return d.CreatedAtUnix
		})
	}

	m.Decisions[consentKey(decision.Subject, decision.ClientID)] = decision
	return nil
}

func (m *ConsentManager) Decision(_ context.Context, subject, clientID string) (*authz.ConsentDecision, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	decision, exists := m.Decisions[consentKey(subject, clientID)]
	if !exists {
		return nil, authz.ErrNotFound
	}

	return decision, nil
}

func consentKey(subject, clientID string) string {
	return subject + ":" + clientID
}

var _ authz.ConsentStore = NewConsentManager(0)
