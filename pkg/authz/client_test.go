package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_IsRedirectURIAllowed(t *testing.T) {
	client := &Client{
		RedirectURIs: []string{"https://example.com/callback"},
	}

	assert.True(t, client.IsRedirectURIAllowed("https://example.com/callback"))
	assert.False(t, client.IsRedirectURIAllowed("https://example.com/callback/extra"))
	assert.False(t, client.IsRedirectURIAllowed("https://example.com/"))
	assert.False(t, client.IsRedirectURIAllowed(""))
}

func TestClient_AreScopesAllowed(t *testing.T) {
	client := &Client{
		Scopes: ScopeSet{"openid", "scope1"},
	}
	serverScopes := Scopes{ScopeOpenID, NewScope("scope1"), NewScope("scope2")}

	assert.True(t, client.AreScopesAllowed(serverScopes, ScopeSet{"openid"}))
	assert.True(t, client.AreScopesAllowed(serverScopes, ScopeSet{"openid", "scope1"}))
	assert.False(t, client.AreScopesAllowed(serverScopes, ScopeSet{"openid", "scope2"}))
}

func TestClient_Secret(t *testing.T) {
	hashed, err := HashSecret("random_secret")
	require.NoError(t, err)
	client := &Client{HashedSecret: hashed}

	assert.True(t, client.IsSecretValid("random_secret"))
	assert.False(t, client.IsSecretValid("wrong_secret"))
}

func TestConsentDecision_Covers(t *testing.T) {
	decision := &ConsentDecision{
		GrantedScopes: ScopeSet{"openid", "scope1"},
	}

	assert.True(t, decision.Covers(ScopeSet{"openid"}))
	assert.True(t, decision.Covers(ScopeSet{"openid", "scope1"}))
	assert.False(t, decision.Covers(ScopeSet{"openid", "scope2"}))

	decision.Denied = true
	assert.False(t, decision.Covers(ScopeSet{"openid"}))
}

func TestResponseType(t *testing.T) {
	assert.True(t, ResponseTypeCodeAndIDToken.Contains(ResponseTypeCode))
	assert.True(t, ResponseTypeCodeAndIDToken.Contains(ResponseTypeIDToken))
	assert.False(t, ResponseTypeCode.Contains(ResponseTypeIDToken))

	assert.False(t, ResponseTypeCode.IsImplicit())
	assert.True(t, ResponseTypeIDToken.IsImplicit())
	assert.True(t, ResponseTypeCodeAndToken.IsImplicit())
}
