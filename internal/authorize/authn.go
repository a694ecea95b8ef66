package authorize

import (
	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/internal/strutil"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// authnOutcome is the authentication context the rest of the pipeline runs
// with once the login stage is settled.
type authnOutcome struct {
	subject  authz.Subject
	idp      string
	acr      string
	authTime int64
}

// resolveAuthn decides whether the current session satisfies the request's
// authentication requirements. A non-nil result means the pipeline stops
// here, either suspended on a login interaction or failed with a redirect
// error when prompt=none forbids interacting.
func resolveAuthn(
	ctx oidc.Context,
	client *authz.Client,
	params authz.AuthorizationParameters,
) (authnOutcome, *authz.Result, error) {
	session, err := ctx.Session()
	if err != nil {
		return authnOutcome{}, nil, wrapRedirectionError(authz.ErrorCodeServerError,
			"could not load the session", params, err)
	}

	if sessionSatisfies(ctx, session, client, params) {
		return authnOutcome{
			subject:  session.Subject,
			idp:      session.IdentityProvider,
			acr:      session.ACR,
			authTime: session.AuthenticatedAtUnix,
		}, nil, nil
	}

	if params.Prompt == authz.PromptTypeNone {
		return authnOutcome{}, nil, newRedirectionError(authz.ErrorCodeLoginRequired,
			"end-user authentication is required", params)
	}

	state, err := newInteractionState(ctx, authz.StageLogin, client.ID, params)
	if err != nil {
		return authnOutcome{}, nil, wrapRedirectionError(authz.ErrorCodeServerError,
			"could not create the authorization state", params, err)
	}

	result, err := suspend(ctx, state, authz.ResultRequireLogin, nil)
	if err != nil {
		return authnOutcome{}, nil, err
	}
	return authnOutcome{}, &result, nil
}

func sessionSatisfies(
	ctx oidc.Context,
	session *authz.Session,
	client *authz.Client,
	params authz.AuthorizationParameters,
) bool {
	if session == nil || session.IsExpired() {
		return false
	}

	if params.Prompt == authz.PromptTypeLogin || params.Prompt == authz.PromptTypeSelectAccount {
		return false
	}

	if params.MaxAuthnAgeSecs != nil && session.AuthnAge() > *params.MaxAuthnAgeSecs {
		return false
	}

	if client.IdentityProvider != "" && session.IdentityProvider != client.IdentityProvider {
		return false
	}

	if acrs := strutil.SplitWithSpaces(params.ACRValues); len(acrs) > 0 {
		satisfied := false
		for _, acr := range acrs {
			if session.ACR == acr {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
