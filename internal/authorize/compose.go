package authorize

import (
	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// responseMode resolves the effective response mode. An explicit request
// value wins; otherwise implicit grants default to the fragment and pure
// authorization code grants to the query.
func responseMode(params authz.AuthorizationParameters) authz.ResponseMode {
	if params.ResponseMode != "" {
		return params.ResponseMode
	}

	if params.ResponseType.IsImplicit() {
		return authz.ResponseModeFragment
	}

	return authz.ResponseModeQuery
}

// composeSuccess mints the artifacts named by the response type and builds
// the redirection result. The scope parameter always reflects the set that
// was actually granted, which may be narrower than the request.
func composeSuccess(
	ctx oidc.Context,
	client *authz.Client,
	subject authz.Subject,
	params authz.AuthorizationParameters,
	granted authz.ScopeSet,
	authn authnOutcome,
) (authz.Result, error) {
	resp := response{
		scopes: granted.String(),
		state:  params.State,
	}

	if params.ResponseType.Contains(authz.ResponseTypeCode) {
		code, err := ctx.IssueCode(client, subject, params, granted)
		if err != nil {
			return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
				"could not issue the authorization code", params, err)
		}
		resp.authorizationCode = code
	}

	if params.ResponseType.Contains(authz.ResponseTypeToken) {
		token, tokenType, expiresIn, err := ctx.IssueAccessToken(client, subject, granted)
		if err != nil {
			return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
				"could not issue the access token", params, err)
		}
		resp.accessToken = token
		resp.tokenType = tokenType
		resp.expiresIn = expiresIn
	}

	if params.ResponseType.Contains(authz.ResponseTypeIDToken) {
		idToken, err := ctx.IssueIDToken(client, subject, authz.IDTokenOptions{
			Nonce:               params.Nonce,
			ACR:                 authn.acr,
			AuthenticatedAtUnix: authn.authTime,
			AccessToken:         resp.accessToken,
			AuthorizationCode:   resp.authorizationCode,
			State:               params.State,
		})
		if err != nil {
			return authz.Result{}, wrapRedirectionError(authz.ErrorCodeServerError,
				"could not issue the id token", params, err)
		}
		resp.idToken = idToken
	}

	return authz.Result{
		Kind:         authz.ResultRedirect,
		RedirectURI:  params.RedirectURI,
		ResponseMode: responseMode(params),
		Parameters:   resp.parameters(),
	}, nil
}
