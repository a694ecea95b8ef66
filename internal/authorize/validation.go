package authorize

import (
	"slices"

	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/internal/strutil"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// validateRequest checks the raw request against the client's registration
// and the server configuration. The client and the redirect URI are checked
// before anything else; errors raised past that point are redirection errors
// since the redirect target is then known to be trusted.
func validateRequest(
	ctx oidc.Context,
	req authz.Request,
	client *authz.Client,
) error {
	params := req.AuthorizationParameters

	if params.RedirectURI == "" {
		return authz.NewError(authz.ErrorCodeInvalidRequest, "redirect_uri is required")
	}

	if !client.IsRedirectURIAllowed(params.RedirectURI) {
		return authz.NewError(authz.ErrorCodeInvalidRedirectURI, "redirect_uri is not registered for the client")
	}

	if err := validateResponseType(ctx, params, client); err != nil {
		return err
	}

	if err := validateResponseMode(ctx, params); err != nil {
		return err
	}

	if err := validateScopes(ctx, params, client); err != nil {
		return err
	}

	if err := validateOpenIDParams(params); err != nil {
		return err
	}

	if err := validatePKCE(ctx, params, client); err != nil {
		return err
	}

	return validateHints(ctx, params)
}

func validateResponseType(
	ctx oidc.Context,
	params authz.AuthorizationParameters,
	client *authz.Client,
) error {
	if params.ResponseType == "" {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"response_type is required", params)
	}

	if !slices.Contains(ctx.ResponseTypes, params.ResponseType) {
		return newRedirectionError(authz.ErrorCodeUnsupportedResponseType,
			"response_type is not supported", params)
	}

	if !client.IsResponseTypeAllowed(params.ResponseType) {
		return newRedirectionError(authz.ErrorCodeUnauthorizedClient,
			"response_type is not allowed for the client", params)
	}

	return nil
}

func validateResponseMode(
	ctx oidc.Context,
	params authz.AuthorizationParameters,
) error {
	if params.ResponseMode == "" {
		return nil
	}

	if !slices.Contains(ctx.ResponseModes, params.ResponseMode) {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"invalid response_mode", params)
	}

	// Access and identity tokens must never travel in the query string,
	// browsers log and cache it.
	if params.ResponseType.IsImplicit() && params.ResponseMode.IsQuery() {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"invalid response_mode for the chosen response_type", params)
	}

	return nil
}

func validateScopes(
	ctx oidc.Context,
	params authz.AuthorizationParameters,
	client *authz.Client,
) error {
	requested := params.ScopeSet()
	if len(requested) == 0 {
		return newRedirectionError(authz.ErrorCodeInvalidScope,
			"scope is required", params)
	}

	resolved, err := ctx.ResolveScopes(requested)
	if err != nil {
		return wrapRedirectionError(authz.ErrorCodeInvalidScope,
			"invalid scope", params, err)
	}

	if !client.AreScopesAllowed(resolved, requested) {
		return newRedirectionError(authz.ErrorCodeInvalidScope,
			"scope is not allowed for the client", params)
	}

	return nil
}

func validateOpenIDParams(params authz.AuthorizationParameters) error {
	if !params.ResponseType.Contains(authz.ResponseTypeIDToken) {
		return nil
	}

	if !params.ScopeSet().ContainsOpenID() {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"cannot request id_token without the scope openid", params)
	}

	if params.Nonce == "" {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"nonce is required when response type id_token is requested", params)
	}

	return nil
}

func validatePKCE(
	ctx oidc.Context,
	params authz.AuthorizationParameters,
	client *authz.Client,
) error {
	if params.CodeChallengeMethod != "" &&
		!slices.Contains(ctx.CodeChallengeMethods, params.CodeChallengeMethod) {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"invalid code_challenge_method", params)
	}

	if !params.ResponseType.Contains(authz.ResponseTypeCode) {
		return nil
	}

	isPublic := client.HashedSecret == ""
	pkceRequired := client.RequirePKCE ||
		(ctx.PKCERequiredForPublicClients && isPublic)
	if pkceRequired && params.CodeChallenge == "" {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"code_challenge is required", params)
	}

	return nil
}

func validateHints(
	ctx oidc.Context,
	params authz.AuthorizationParameters,
) error {
	switch params.Prompt {
	case "", authz.PromptTypeNone, authz.PromptTypeLogin,
		authz.PromptTypeConsent, authz.PromptTypeSelectAccount:
	default:
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"invalid prompt value", params)
	}

	if params.Display != "" && len(ctx.DisplayValues) > 0 &&
		!slices.Contains(ctx.DisplayValues, params.Display) {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"invalid display value", params)
	}

	if len(ctx.ACRs) > 0 {
		for _, acr := range strutil.SplitWithSpaces(params.ACRValues) {
			if !slices.Contains(ctx.ACRs, acr) {
				return newRedirectionError(authz.ErrorCodeInvalidRequest,
					"invalid acr value", params)
			}
		}
	}

	if params.MaxAuthnAgeSecs != nil && *params.MaxAuthnAgeSecs < 0 {
		return newRedirectionError(authz.ErrorCodeInvalidRequest,
			"invalid max_age value", params)
	}

	return nil
}
