package authorize

import (
	"errors"

	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/internal/timeutil"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// InitAuth runs the authorization pipeline for a fresh request. It either
// finishes with a terminal result (redirect or local error) or suspends,
// handing back a correlation ID for the hosting layer to resume with.
func InitAuth(ctx oidc.Context, req authz.Request) authz.Result {
	result, err := initAuth(ctx, req)
	if err != nil {
		result = errorResult(ctx, err)
	}
	observeResult(result)
	return result
}

func initAuth(ctx oidc.Context, req authz.Request) (authz.Result, error) {
	client, err := ctx.Client(req.ClientID)
	if err != nil {
		return authz.Result{}, authz.WrapError(authz.ErrorCodeInvalidClient,
			"invalid client_id", err)
	}

	if err := validateRequest(ctx, req, client); err != nil {
		return authz.Result{}, err
	}

	params := req.AuthorizationParameters

	authn, stop, err := resolveAuthn(ctx, client, params)
	if err != nil {
		return authz.Result{}, err
	}
	if stop != nil {
		return *stop, nil
	}

	return finishAuthorization(ctx, client, authn, params)
}

// ResumeLogin re-enters the pipeline after the hosting layer ran the login
// interaction. The state is consumed before anything else, a replayed
// correlation ID must find nothing.
func ResumeLogin(ctx oidc.Context, correlationID string, outcome authz.LoginOutcome) authz.Result {
	result, err := resumeLogin(ctx, correlationID, outcome)
	if err != nil {
		result = errorResult(ctx, err)
	}
	observeResult(result)
	return result
}

func resumeLogin(
	ctx oidc.Context,
	correlationID string,
	outcome authz.LoginOutcome,
) (authz.Result, error) {
	state, err := consumeState(ctx, correlationID, authz.StageLogin)
	if err != nil {
		return authz.Result{}, err
	}

	client, err := ctx.Client(state.ClientID)
	if err != nil {
		return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
			"could not load the client", state.Parameters, err)
	}

	if outcome.Failed() {
		ctx.Log().Info("end-user authentication failed",
			zap.String("client_id", state.ClientID),
			zap.String("reason", outcome.FailureReason))
		return authz.Result{}, newRedirectionError(authz.ErrorCodeAccessDenied,
			"end-user authentication failed", state.Parameters)
	}

	authn := authnOutcome{
		subject:  *outcome.Subject,
		idp:      outcome.IdentityProvider,
		acr:      outcome.ACR,
		authTime: timeutil.TimestampNow(),
	}

	return finishAuthorization(ctx, client, authn, state.Parameters)
}

// ResumeConsent re-enters the pipeline after the hosting layer ran the
// consent interaction.
func ResumeConsent(ctx oidc.Context, correlationID string, decision authz.ConsentDecision) authz.Result {
	result, err := resumeConsent(ctx, correlationID, decision)
	if err != nil {
		result = errorResult(ctx, err)
	}
	observeResult(result)
	return result
}

func resumeConsent(
	ctx oidc.Context,
	correlationID string,
	decision authz.ConsentDecision,
) (authz.Result, error) {
	state, err := consumeState(ctx, correlationID, authz.StageConsent)
	if err != nil {
		return authz.Result{}, err
	}

	client, err := ctx.Client(state.ClientID)
	if err != nil {
		return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
			"could not load the client", state.Parameters, err)
	}

	if state.Subject == nil {
		return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
			"the authorization state has no authenticated subject",
			state.Parameters, errors.New("consent state without subject"))
	}

	authn := authnOutcome{
		subject:  *state.Subject,
		idp:      state.IdentityProvider,
		acr:      state.ACR,
		authTime: state.AuthenticatedAtUnix,
	}

	decision.Subject = authn.subject.ID
	decision.ClientID = client.ID
	decision.CreatedAtUnix = timeutil.TimestampNow()

	if decision.Remember {
		if err := ctx.SaveConsent(&decision); err != nil {
			return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
				"could not store the consent decision", state.Parameters, err)
		}
	}

	if decision.Denied {
		return authz.Result{}, newRedirectionError(authz.ErrorCodeAccessDenied,
			"the end-user denied the requested scopes", state.Parameters)
	}

	granted := grantedScopes(ctx, state.Parameters.ScopeSet(), decision.GrantedScopes)
	// Granting nothing is a denial, a response bound to zero scopes must
	// never be minted.
	if len(granted) == 0 {
		return authz.Result{}, newRedirectionError(authz.ErrorCodeAccessDenied,
			"the end-user denied the requested scopes", state.Parameters)
	}

	return composeSuccess(ctx, client, authn.subject, state.Parameters, granted, authn)
}

// finishAuthorization runs the stages shared by the fresh and the resumed
// entry points: consent resolution followed by response composition.
func finishAuthorization(
	ctx oidc.Context,
	client *authz.Client,
	authn authnOutcome,
	params authz.AuthorizationParameters,
) (authz.Result, error) {
	granted, stop, err := resolveConsent(ctx, client, authn, params)
	if err != nil {
		return authz.Result{}, err
	}
	if stop != nil {
		return *stop, nil
	}

	return composeSuccess(ctx, client, authn.subject, params, granted, authn)
}

// consumeState atomically fetches and deletes the interaction state. A
// missing state and an expired one are indistinguishable to callers holding
// only a correlation ID, but an expired state still names a trusted redirect
// URI, so its error goes back to the client.
func consumeState(
	ctx oidc.Context,
	correlationID string,
	stage authz.InteractionStage,
) (*authz.InteractionState, error) {
	state, err := ctx.ConsumeInteraction(correlationID)
	if err != nil {
		if errors.Is(err, authz.ErrNotFound) {
			return nil, authz.NewError(authz.ErrorCodeInvalidRequest,
				"invalid correlation id")
		}
		return nil, authz.WrapError(authz.ErrorCodeServerError,
			"could not load the authorization state", err)
	}

	if state.IsExpired() {
		return nil, newRedirectionError(authz.ErrorCodeInvalidRequest,
			"the authorization request expired", state.Parameters)
	}

	if state.Stage != stage {
		return nil, newRedirectionError(authz.ErrorCodeInvalidRequest,
			"unexpected authorization stage", state.Parameters)
	}

	return state, nil
}
