package authorize

import (
	"errors"

	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// resolveConsent determines the granted scope set for the request. A non-nil
// result means the pipeline stops here, suspended on a consent interaction
// or failed with a redirect error when prompt=none forbids interacting.
func resolveConsent(
	ctx oidc.Context,
	client *authz.Client,
	authn authnOutcome,
	params authz.AuthorizationParameters,
) (authz.ScopeSet, *authz.Result, error) {
	requested := params.ScopeSet()

	needsPrompt := client.RequireConsent || params.Prompt == authz.PromptTypeConsent
	if !needsPrompt {
		return requested, nil, nil
	}

	if params.Prompt != authz.PromptTypeConsent {
		decision, err := ctx.Consent(authn.subject.ID, client.ID)
		if err != nil && !errors.Is(err, authz.ErrNotFound) {
			return nil, nil, wrapRedirectionError(authz.ErrorCodeServerError,
				"could not load the consent decision", params, err)
		}
		if decision != nil {
			if decision.Denied {
				return nil, nil, newRedirectionError(authz.ErrorCodeAccessDenied,
					"the end-user denied the requested scopes", params)
			}
			// A remembered grant covering only part of the request never
			// silently broadens, the user is prompted again instead.
			if decision.Covers(requested.Minus(ctx.AutoGrantedScopes)) {
				granted := requested.Intersect(decision.GrantedScopes)
				granted = appendAutoGranted(ctx, granted, requested)
				return granted, nil, nil
			}
		}
	}

	if params.Prompt == authz.PromptTypeNone {
		return nil, nil, newRedirectionError(authz.ErrorCodeConsentRequired,
			"end-user consent is required", params)
	}

	state, err := newInteractionState(ctx, authz.StageConsent, client.ID, params)
	if err != nil {
		return nil, nil, wrapRedirectionError(authz.ErrorCodeServerError,
			"could not create the authorization state", params, err)
	}
	state.Subject = &authn.subject
	state.IdentityProvider = authn.idp
	state.ACR = authn.acr
	state.AuthenticatedAtUnix = authn.authTime

	result, err := suspend(ctx, state, authz.ResultRequireConsent,
		requested.Minus(ctx.AutoGrantedScopes))
	if err != nil {
		return nil, nil, err
	}
	return nil, &result, nil
}

// grantedScopes computes the effective grant out of a consent decision: the
// intersection of what was requested and what the user consented to, plus
// the auto granted scopes that were requested.
func grantedScopes(
	ctx oidc.Context,
	requested authz.ScopeSet,
	consented authz.ScopeSet,
) authz.ScopeSet {
	granted := requested.Intersect(consented)
	return appendAutoGranted(ctx, granted, requested)
}

func appendAutoGranted(
	ctx oidc.Context,
	granted authz.ScopeSet,
	requested authz.ScopeSet,
) authz.ScopeSet {
	for _, scope := range requested {
		if ctx.AutoGrantedScopes.Contains(scope) && !granted.Contains(scope) {
			granted = append(granted, scope)
		}
	}
	return granted
}
