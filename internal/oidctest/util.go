// Package oidctest holds fixtures shared by the engine's tests.
package oidctest

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/internal/storage"
	"github.com/rafaelq/go-authz/internal/token"
	"github.com/rafaelq/go-authz/pkg/authz"
)

const (
	Issuer            string = "https://example.com"
	KeyID             string = "test_rsa256_key"
	ClientID          string = "test_client_id"
	ClientSecret      string = "test_client_secret"
	ClientRedirectURI string = "https://example.com/callback"
	SubjectID         string = "bob"
)

var (
	Scope1 = authz.NewScope("scope1")
	Scope2 = authz.NewScope("scope2")
)

func NewClient(_ *testing.T) *authz.Client {
	hashedClientSecret, _ := bcrypt.GenerateFromPassword([]byte(ClientSecret), bcrypt.DefaultCost)
	return &authz.Client{
		ID:           ClientID,
		HashedSecret: string(hashedClientSecret),
		Name:         "Test Client",
		RedirectURIs: []string{ClientRedirectURI},
		Scopes:       authz.ScopeSet{authz.ScopeOpenID.ID, Scope1.ID, Scope2.ID},
		ResponseTypes: []authz.ResponseType{
			authz.ResponseTypeCode,
			authz.ResponseTypeIDToken,
			authz.ResponseTypeToken,
			authz.ResponseTypeCodeAndIDToken,
			authz.ResponseTypeCodeAndToken,
			authz.ResponseTypeIDTokenAndToken,
			authz.ResponseTypeCodeAndIDTokenAndToken,
		},
	}
}

// NewSession is an unexpired session for SubjectID, authenticated a minute
// ago.
func NewSession(_ *testing.T) *authz.Session {
	now := time.Now().Unix()
	return &authz.Session{
		Subject:             authz.Subject{ID: SubjectID},
		IdentityProvider:    "local",
		AuthenticatedAtUnix: now - 60,
		ExpiresAtUnix:       now + 3600,
	}
}

func NewContext(t *testing.T) oidc.Context {
	scopes := authz.Scopes{authz.ScopeOpenID, Scope1, Scope2}
	config := &oidc.Configuration{
		Issuer: Issuer,
		Scopes: scopes,
		ResponseTypes: []authz.ResponseType{
			authz.ResponseTypeCode,
			authz.ResponseTypeIDToken,
			authz.ResponseTypeToken,
			authz.ResponseTypeCodeAndIDToken,
			authz.ResponseTypeCodeAndToken,
			authz.ResponseTypeIDTokenAndToken,
			authz.ResponseTypeCodeAndIDTokenAndToken,
		},
		ResponseModes: []authz.ResponseMode{
			authz.ResponseModeQuery,
			authz.ResponseModeFragment,
			authz.ResponseModeFormPost,
		},
		CodeChallengeMethods: []authz.CodeChallengeMethod{
			authz.CodeChallengeMethodSHA256,
		},
		InteractionLifetimeSecs: 60,
		ClientStore:             storage.NewClientManager(10),
		ScopeStore:              storage.NewScopeManager(scopes),
		SessionProvider:         &StaticSessionProvider{},
		ConsentStore:            storage.NewConsentManager(10),
		InteractionStore:        storage.NewInteractionManager(time.Minute),
		TokenIssuer:             token.NewIssuer(Issuer, PrivateRS256JWK(t, KeyID)),
	}

	ctx := oidc.NewContext(context.Background(), config)
	require.NoError(t, config.ClientStore.(*storage.ClientManager).Save(ctx, NewClient(t)))
	return ctx
}

// Authenticate swaps the context's session provider for one that reports the
// given session.
func Authenticate(ctx oidc.Context, session *authz.Session) {
	ctx.SessionProvider = &StaticSessionProvider{Ses: session}
}

func PrivateRS256JWK(t *testing.T, keyID string) jose.JSONWebKey {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err, "could not generate the test key")
	return jose.JSONWebKey{
		Key:       privateKey,
		KeyID:     keyID,
		Algorithm: string(jose.RS256),
		Use:       "sig",
	}
}

// StaticSessionProvider always reports the same session.
type StaticSessionProvider struct {
	Ses *authz.Session
	Err error
}

func (p *StaticSessionProvider) Session(_ context.Context) (*authz.Session, error) {
	return p.Ses, p.Err
}
