package provider

import (
	"time"

	"github.com/go-jose/go-jose/v4"
	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/internal/storage"
	"github.com/rafaelq/go-authz/internal/token"
	"github.com/rafaelq/go-authz/pkg/authz"
)

const (
	defaultInteractionLifetimeSecs = 600
	defaultStorageMaxSize          = 1000

	defaultLoginURL   = "/login"
	defaultConsentURL = "/consent"
)

func (p Provider) setDefaults(privateJWK jose.JSONWebKey) {
	config := p.config

	if config.Scopes == nil {
		config.Scopes = authz.Scopes{authz.ScopeOpenID}
	}
	if config.ResponseTypes == nil {
		config.ResponseTypes = []authz.ResponseType{
			authz.ResponseTypeCode,
			authz.ResponseTypeIDToken,
			authz.ResponseTypeToken,
			authz.ResponseTypeCodeAndIDToken,
			authz.ResponseTypeCodeAndToken,
			authz.ResponseTypeIDTokenAndToken,
			authz.ResponseTypeCodeAndIDTokenAndToken,
		}
	}
	if config.ResponseModes == nil {
		config.ResponseModes = []authz.ResponseMode{
			authz.ResponseModeQuery,
			authz.ResponseModeFragment,
			authz.ResponseModeFormPost,
		}
	}
	if config.CodeChallengeMethods == nil {
		config.CodeChallengeMethods = []authz.CodeChallengeMethod{
			authz.CodeChallengeMethodSHA256,
		}
	}
	if config.InteractionLifetimeSecs == 0 {
		config.InteractionLifetimeSecs = defaultInteractionLifetimeSecs
	}

	if config.ClientStore == nil {
		config.ClientStore = storage.NewClientManager(defaultStorageMaxSize)
	}
	if config.ScopeStore == nil {
		config.ScopeStore = storage.NewScopeManager(config.Scopes)
	}
	if config.ConsentStore == nil {
		config.ConsentStore = storage.NewConsentManager(defaultStorageMaxSize)
	}
	if config.InteractionStore == nil {
		config.InteractionStore = storage.NewInteractionManager(
			time.Duration(config.InteractionLifetimeSecs) * time.Second)
	}
	if config.TokenIssuer == nil {
		config.TokenIssuer = token.NewIssuer(config.Issuer, privateJWK)
	}

	if config.LoginURL == "" {
		config.LoginURL = defaultLoginURL
	}
	if config.ConsentURL == "" {
		config.ConsentURL = defaultConsentURL
	}

	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
}
