package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func TestInteractionManager_ConsumeIsSingleUse(t *testing.T) {
	// Given.
	manager := NewInteractionManager(time.Minute)
	ctx := context.Background()
	state := &authz.InteractionState{
		ID:            "random_id",
		CorrelationID: "random_correlation_id",
		Stage:         authz.StageLogin,
		ClientID:      "random_client_id",
	}
	require.NoError(t, manager.Save(ctx, state))

	// When.
	got, err := manager.Consume(ctx, state.CorrelationID)

	// Then.
	require.NoError(t, err)
	assert.Equal(t, state, got)

	// When.
	_, err = manager.Consume(ctx, state.CorrelationID)

	// Then.
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestInteractionManager_ConsumeUnknownID(t *testing.T) {
	manager := NewInteractionManager(time.Minute)

	_, err := manager.Consume(context.Background(), "unknown_correlation_id")

	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestInteractionManager_ExpiredStateIsGone(t *testing.T) {
	// Given.
	manager := NewInteractionManager(time.Millisecond)
	ctx := context.Background()
	state := &authz.InteractionState{
		ID:            "random_id",
		CorrelationID: "random_correlation_id",
	}
	require.NoError(t, manager.Save(ctx, state))
	time.Sleep(5 * time.Millisecond)

	// When.
	_, err := manager.Consume(ctx, state.CorrelationID)

	// Then.
	assert.ErrorIs(t, err, authz.ErrNotFound)
}
