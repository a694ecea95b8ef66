package token

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func newTestIssuer(t *testing.T) *Issuer {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewIssuer("https://example.com", jose.JSONWebKey{
		Key:       privateKey,
		KeyID:     "test_key",
		Algorithm: string(jose.RS256),
	})
}

func TestIssueCode(t *testing.T) {
	issuer := newTestIssuer(t)

	code, err := issuer.IssueCode(context.Background(), nil, authz.Subject{}, authz.AuthorizationParameters{}, nil)
	require.NoError(t, err)
	other, err := issuer.IssueCode(context.Background(), nil, authz.Subject{}, authz.AuthorizationParameters{}, nil)
	require.NoError(t, err)

	assert.Len(t, code, defaultAuthorizationCodeLength)
	assert.NotEqual(t, code, other)
}

func TestIssueAccessToken(t *testing.T) {
	// Given.
	issuer := newTestIssuer(t)
	client := &authz.Client{ID: "test_client_id"}
	subject := authz.Subject{ID: "random_subject"}

	// When.
	accessToken, tokenType, expiresIn, err := issuer.IssueAccessToken(
		context.Background(), client, subject, authz.ScopeSet{"openid", "scope1"})

	// Then.
	require.NoError(t, err)
	assert.Equal(t, authz.TokenTypeBearer, tokenType)
	assert.EqualValues(t, defaultAccessTokenLifetimeSecs, expiresIn)

	parsed, err := jwt.ParseSigned(accessToken, []jose.SignatureAlgorithm{jose.RS256})
	require.NoError(t, err)
	var claims map[string]any
	require.NoError(t, parsed.UnsafeClaimsWithoutVerification(&claims))
	assert.Equal(t, "https://example.com", claims[authz.ClaimIssuer])
	assert.Equal(t, subject.ID, claims[authz.ClaimSubject])
	assert.Equal(t, client.ID, claims[authz.ClaimClientID])
	assert.Equal(t, "openid scope1", claims[authz.ClaimScope])
}

func TestIssueIDToken(t *testing.T) {
	// Given.
	issuer := newTestIssuer(t)
	client := &authz.Client{ID: "test_client_id"}
	subject := authz.Subject{
		ID:     "random_subject",
		Claims: map[string]any{"email": "bob@example.com"},
	}

	// When.
	idToken, err := issuer.IssueIDToken(context.Background(), client, subject, authz.IDTokenOptions{
		Nonce:               "random_nonce",
		ACR:                 "urn:example:acr:1",
		AuthenticatedAtUnix: 1700000000,
		AccessToken:         "random_access_token",
		AuthorizationCode:   "random_code",
		State:               "random_state",
	})

	// Then.
	require.NoError(t, err)
	parsed, err := jwt.ParseSigned(idToken, []jose.SignatureAlgorithm{jose.RS256})
	require.NoError(t, err)
	var claims map[string]any
	require.NoError(t, parsed.UnsafeClaimsWithoutVerification(&claims))
	assert.Equal(t, subject.ID, claims[authz.ClaimSubject])
	assert.Equal(t, client.ID, claims[authz.ClaimAudience])
	assert.Equal(t, "random_nonce", claims[authz.ClaimNonce])
	assert.Equal(t, "urn:example:acr:1", claims[authz.ClaimACR])
	assert.Equal(t, "bob@example.com", claims["email"])
	assert.NotEmpty(t, claims[authz.ClaimAccessTokenHash])
	assert.NotEmpty(t, claims[authz.ClaimAuthorizationCodeHash])
	assert.NotEmpty(t, claims[authz.ClaimStateHash])
	assert.Equal(t, halfHashClaim("random_access_token", jose.RS256), claims[authz.ClaimAccessTokenHash])
}
