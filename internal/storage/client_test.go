package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func TestClientManager(t *testing.T) {
	// Given.
	manager := NewClientManager(10)
	ctx := context.Background()
	client := &authz.Client{ID: "random_client_id"}
	require.NoError(t, manager.Save(ctx, client))

	// When.
	got, err := manager.Client(ctx, client.ID)

	// Then.
	require.NoError(t, err)
	assert.Equal(t, client, got)

	// When.
	_, err = manager.Client(ctx, "unknown_client_id")

	// Then.
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestScopeManager(t *testing.T) {
	// Given.
	manager := NewScopeManager(authz.Scopes{
		authz.ScopeOpenID,
		authz.NewDynamicScope("payment", func(requested string) bool {
			return requested == "payment" || len(requested) > 8 && requested[:8] == "payment:"
		}),
	})
	ctx := context.Background()

	// When.
	resolved, err := manager.Resolve(ctx, []string{"openid", "payment:123"})

	// Then.
	require.NoError(t, err)
	assert.Len(t, resolved, 2)

	// When.
	_, err = manager.Resolve(ctx, []string{"openid", "unknown_scope"})

	// Then.
	assert.ErrorIs(t, err, authz.ErrNotFound)
}
