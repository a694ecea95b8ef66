package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func TestConsentManager(t *testing.T) {
	// Given.
	manager := NewConsentManager(10)
	ctx := context.Background()
	decision := &authz.ConsentDecision{
		Subject:       "random_subject",
		ClientID:      "random_client_id",
		GrantedScopes: authz.ScopeSet{"openid"},
		Remember:      true,
	}
	require.NoError(t, manager.Save(ctx, decision))

	// When.
	got, err := manager.Decision(ctx, decision.Subject, decision.ClientID)

	// Then.
	require.NoError(t, err)
	assert.Equal(t, decision, got)

	// When.
	_, err = manager.Decision(ctx, "unknown_subject", decision.ClientID)

	// Then.
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestConsentManager_EvictsOldestWhenFull(t *testing.T) {
	// Given.
	manager := NewConsentManager(1)
	ctx := context.Background()
	require.NoError(t, manager.Save(ctx, &authz.ConsentDecision{
		Subject:       "subject1",
		ClientID:      "client",
		CreatedAtUnix: 1,
	}))

	// When.
	require.NoError(t, manager.Save(ctx, &authz.ConsentDecision{
		Subject:       "subject2",
		ClientID:      "client",
		CreatedAtUnix: 2,
	}))

	// Then.
	_, err := manager.Decision(ctx, "subject1", "client")
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestConsentManager_ZeroTimestampIsOldest(t *testing.T) {
	// Given. A decision without a timestamp sorts before any dated one.
	manager := NewConsentManager(2)
	ctx := context.Background()
	require.NoError(t, manager.Save(ctx, &authz.ConsentDecision{
		Subject:       "subject1",
		ClientID:      "client",
		CreatedAtUnix: 0,
	}))
	require.NoError(t, manager.Save(ctx, &authz.ConsentDecision{
		Subject:       "subject2",
		ClientID:      "client",
		CreatedAtUnix: 10,
	}))

	// When.
	require.NoError(t, manager.Save(ctx, &authz.ConsentDecision{
		Subject:       "subject3",
		ClientID:      "client",
		CreatedAtUnix: 20,
	}))

	// Then.
	_, err := manager.Decision(ctx, "subject1", "client")
	assert.ErrorIs(t, err, authz.ErrNotFound)
	_, err = manager.Decision(ctx, "subject2", "client")
	assert.NoError(t, err)
	_, err = manager.Decision(ctx, "subject3", "client")
	assert.NoError(t, err)
}
