package authorize

import (
	"github.com/google/uuid"

	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/internal/strutil"
	"github.com/rafaelq/go-authz/internal/timeutil"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// newInteractionState snapshots a pending authorization so it can be resumed
// after the user interacts. The correlation ID is the only value handed to
// the outside and must be unguessable.
func newInteractionState(
	ctx oidc.Context,
	stage authz.InteractionStage,
	clientID string,
	params authz.AuthorizationParameters,
) (*authz.InteractionState, error) {
	correlationID, err := strutil.Random(correlationIDLength)
	if err != nil {
		return nil, err
	}

	lifetime := ctx.InteractionLifetimeSecs
	if lifetime <= 0 {
		lifetime = defaultInteractionLifetimeSecs
	}

	now := timeutil.TimestampNow()
	return &authz.InteractionState{
		ID:            uuid.NewString(),
		CorrelationID: correlationID,
		Stage:         stage,
		ClientID:      clientID,
		Parameters:    params,
		CreatedAtUnix: now,
		ExpiresAtUnix: now + lifetime,
	}, nil
}

func suspend(
	ctx oidc.Context,
	state *authz.InteractionState,
	kind authz.ResultKind,
	scopesToShow authz.ScopeSet,
) (authz.Result, error) {
	if err := ctx.SaveInteraction(state); err != nil {
		return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
			"could not store the authorization state", state.Parameters, err)
	}

	return authz.Result{
		Kind:          kind,
		CorrelationID: state.CorrelationID,
		ScopesToShow:  scopesToShow,
		LoginHint:     state.Parameters.LoginHint,
	}, nil
}
