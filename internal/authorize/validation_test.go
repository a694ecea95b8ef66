package authorize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelq/go-authz/internal/oidctest"
	"github.com/rafaelq/go-authz/pkg/authz"
)

func TestValidateRequest(t *testing.T) {
	var cases = []struct {
		name                string
		params              authz.AuthorizationParameters
		clientModifyFunc    func(client *authz.Client)
		shouldBeValid       bool
		shouldRedirectError bool
	}{
		{
			name: "valid_oauth_request",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				ResponseMode: authz.ResponseModeQuery,
				Scopes:       "scope1 scope2",
			},
			shouldBeValid: true,
		},
		{
			name: "valid_openid_request",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid",
			},
			shouldBeValid: true,
		},
		{
			name: "missing_redirect_uri",
			params: authz.AuthorizationParameters{
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid",
			},
		},
		{
			name: "unregistered_redirect_uri",
			params: authz.AuthorizationParameters{
				RedirectURI:  "https://attacker.example.com/callback",
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid",
			},
		},
		{
			// Registered URIs must match exactly, no prefix matching.
			name: "redirect_uri_with_extra_path",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI + "/extra",
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid",
			},
		},
		{
			name: "missing_response_type",
			params: authz.AuthorizationParameters{
				RedirectURI: oidctest.ClientRedirectURI,
				Scopes:      "openid",
			},
			shouldRedirectError: true,
		},
		{
			name: "unsupported_response_type",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: "code unknown",
				Scopes:       "openid",
			},
			shouldRedirectError: true,
		},
		{
			name: "response_type_not_allowed_for_client",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid",
			},
			clientModifyFunc: func(client *authz.Client) {
				client.ResponseTypes = nil
			},
			shouldRedirectError: true,
		},
		{
			name: "query_response_mode_with_implicit_response_type",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCodeAndIDToken,
				ResponseMode: authz.ResponseModeQuery,
				Scopes:       "openid",
				Nonce:        "random_nonce",
			},
			shouldRedirectError: true,
		},
		{
			name: "invalid_response_mode",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				ResponseMode: "web_message",
				Scopes:       "openid",
			},
			shouldRedirectError: true,
		},
		{
			name: "missing_scope",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
			},
			shouldRedirectError: true,
		},
		{
			name: "unregistered_scope",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid unknown_scope",
			},
			shouldRedirectError: true,
		},
		{
			name: "scope_not_allowed_for_client",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid scope1",
			},
			clientModifyFunc: func(client *authz.Client) {
				client.Scopes = authz.ScopeSet{"openid"}
			},
			shouldRedirectError: true,
		},
		{
			name: "id_token_without_openid_scope",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeIDToken,
				Scopes:       "scope1",
				Nonce:        "random_nonce",
			},
			shouldRedirectError: true,
		},
		{
			name: "id_token_without_nonce",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeIDToken,
				Scopes:       "openid",
			},
			shouldRedirectError: true,
		},
		{
			name: "invalid_code_challenge_method",
			params: authz.AuthorizationParameters{
				RedirectURI:         oidctest.ClientRedirectURI,
				ResponseType:        authz.ResponseTypeCode,
				Scopes:              "openid",
				CodeChallenge:       "random_challenge",
				CodeChallengeMethod: "plain",
			},
			shouldRedirectError: true,
		},
		{
			name: "missing_code_challenge_when_client_requires_pkce",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid",
			},
			clientModifyFunc: func(client *authz.Client) {
				client.RequirePKCE = true
			},
			shouldRedirectError: true,
		},
		{
			name: "invalid_prompt",
			params: authz.AuthorizationParameters{
				RedirectURI:  oidctest.ClientRedirectURI,
				ResponseType: authz.ResponseTypeCode,
				Scopes:       "openid",
				Prompt:       "unknown_prompt",
			},
			shouldRedirectError: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Given.
			ctx := oidctest.NewContext(t)
			client := oidctest.NewClient(t)
			if c.clientModifyFunc != nil {
				c.clientModifyFunc(client)
			}
			req := authz.Request{
				ClientID:                client.ID,
				AuthorizationParameters: c.params,
			}

			// When.
			err := validateRequest(ctx, req, client)

			// Then.
			if c.shouldBeValid {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var redirectErr redirectionError
			assert.Equal(t, c.shouldRedirectError, errors.As(err, &redirectErr))
		})
	}
}
