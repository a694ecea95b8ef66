package authorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func TestResponseMode(t *testing.T) {
	var cases = []struct {
		name         string
		params       authz.AuthorizationParameters
		expectedMode authz.ResponseMode
	}{
		{
			name: "code_defaults_to_query",
			params: authz.AuthorizationParameters{
				ResponseType: authz.ResponseTypeCode,
			},
			expectedMode: authz.ResponseModeQuery,
		},
		{
			name: "id_token_defaults_to_fragment",
			params: authz.AuthorizationParameters{
				ResponseType: authz.ResponseTypeIDToken,
			},
			expectedMode: authz.ResponseModeFragment,
		},
		{
			name: "token_defaults_to_fragment",
			params: authz.AuthorizationParameters{
				ResponseType: authz.ResponseTypeToken,
			},
			expectedMode: authz.ResponseModeFragment,
		},
		{
			name: "hybrid_defaults_to_fragment",
			params: authz.AuthorizationParameters{
				ResponseType: authz.ResponseTypeCodeAndIDToken,
			},
			expectedMode: authz.ResponseModeFragment,
		},
		{
			name: "explicit_mode_wins",
			params: authz.AuthorizationParameters{
				ResponseType: authz.ResponseTypeCode,
				ResponseMode: authz.ResponseModeFormPost,
			},
			expectedMode: authz.ResponseModeFormPost,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expectedMode, responseMode(c.params))
		})
	}
}

func TestResponseParameters_Order(t *testing.T) {
	// Given.
	resp := response{
		authorizationCode: "random_code",
		accessToken:       "random_token",
		tokenType:         authz.TokenTypeBearer,
		expiresIn:         600,
		idToken:           "random_id_token",
		scopes:            "openid",
		state:             "random_state",
	}

	// When.
	params := resp.parameters()

	// Then.
	var names []string
	for _, p := range params {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"code", "access_token", "token_type", "expires_in",
		"id_token", "scope", "state",
	}, names)
}

func TestResponseParameters_Error(t *testing.T) {
	// Given.
	resp := response{
		errorCode:        authz.ErrorCodeInvalidScope,
		errorDescription: "scope is not allowed",
		state:            "random_state",
	}

	// When.
	params := resp.parameters()

	// Then.
	var names []string
	for _, p := range params {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"error", "error_description", "state"}, names)
}
