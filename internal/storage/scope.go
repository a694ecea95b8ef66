package storage

import (
	"context"
	"fmt"

	"github.com/rafaelq/go-authz/pkg/authz"
)

// ScopeManager resolves requested scope names against a fixed registry.
// Dynamic scopes match by their matcher, so "payment:123" resolves when a
// dynamic "payment" scope is registered.
type ScopeManager struct {
	Scopes authz.Scopes
}

func NewScopeManager(scopes authz.Scopes) *ScopeManager {
	return &ScopeManager{Scopes: scopes}
}

func (m *ScopeManager) Resolve(_ context.Context, names []string) (authz.Scopes, error) {
	var resolved authz.Scopes
	for _, name := range names {
		if !m.Scopes.Contains(name) {
			return nil, fmt.Errorf("scope %q is not registered: %w", name, authz.ErrNotFound)
		}
		resolved = append(resolved, m.scope(name))
	}

	return resolved, nil
}

func (m *ScopeManager) scope(name string) authz.Scope {
	for _, scope := range m.Scopes {
		if scope.Matches(name) {
			return scope
		}
	}
	return authz.NewScope(name)
}

var _ authz.ScopeStore = NewScopeManager(nil)
