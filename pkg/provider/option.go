package provider

import (
	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/pkg/authz"
)

type ProviderOption func(p *Provider) error

// WithClientStore replaces the default client store which keeps the clients
// in memory.
func WithClientStore(store authz.ClientStore) ProviderOption {
	return func(p *Provider) error {
		p.config.ClientStore = store
		return nil
	}
}

// WithScopes defines the scopes the server accepts. The openid scope is
// always added.
func WithScopes(scopes ...authz.Scope) ProviderOption {
	return func(p *Provider) error {
		p.config.Scopes = scopes
		for _, scope := range scopes {
			if scope.ID == authz.ScopeOpenID.ID {
				return nil
			}
		}
		p.config.Scopes = append(p.config.Scopes, authz.ScopeOpenID)
		return nil
	}
}

// WithScopeStore replaces the default scope resolution which checks names
// against the registered scopes.
func WithScopeStore(store authz.ScopeStore) ProviderOption {
	return func(p *Provider) error {
		p.config.ScopeStore = store
		return nil
	}
}

// WithSessionProvider defines how the engine reads the end-user session.
// Required, the engine never authenticates anyone itself.
func WithSessionProvider(sessions authz.SessionProvider) ProviderOption {
	return func(p *Provider) error {
		p.config.SessionProvider = sessions
		return nil
	}
}

// WithConsentStore replaces the default consent store which keeps remembered
// decisions in memory.
func WithConsentStore(store authz.ConsentStore) ProviderOption {
	return func(p *Provider) error {
		p.config.ConsentStore = store
		return nil
	}
}

// WithInteractionStore replaces the default interaction store which keeps
// suspended state in memory.
func WithInteractionStore(store authz.InteractionStore) ProviderOption {
	return func(p *Provider) error {
		p.config.InteractionStore = store
		return nil
	}
}

// WithTokenIssuer replaces the default JWT token issuer.
func WithTokenIssuer(issuer authz.TokenIssuer) ProviderOption {
	return func(p *Provider) error {
		p.config.TokenIssuer = issuer
		return nil
	}
}

// WithResponseTypes restricts the response types the server accepts.
func WithResponseTypes(responseTypes ...authz.ResponseType) ProviderOption {
	return func(p *Provider) error {
		p.config.ResponseTypes = responseTypes
		return nil
	}
}

// WithACRs defines the authentication context references the server accepts
// in acr_values.
func WithACRs(acrs ...string) ProviderOption {
	return func(p *Provider) error {
		p.config.ACRs = acrs
		return nil
	}
}

// WithAutoGrantedScopes defines scopes granted without an explicit consent
// decision and hidden from the consent screen.
func WithAutoGrantedScopes(scopes ...string) ProviderOption {
	return func(p *Provider) error {
		p.config.AutoGrantedScopes = scopes
		return nil
	}
}

// WithInteractionLifetime bounds how long a suspended interaction waits for
// the end-user.
func WithInteractionLifetime(secs int64) ProviderOption {
	return func(p *Provider) error {
		p.config.InteractionLifetimeSecs = secs
		return nil
	}
}

// WithPKCERequiredForPublicClients forces public clients to send a code
// challenge on authorization code requests.
func WithPKCERequiredForPublicClients() ProviderOption {
	return func(p *Provider) error {
		p.config.PKCERequiredForPublicClients = true
		return nil
	}
}

// WithInteractionURLs locates the login and consent pages the HTTP layer
// redirects to when the pipeline suspends.
func WithInteractionURLs(loginURL, consentURL string) ProviderOption {
	return func(p *Provider) error {
		p.config.LoginURL = loginURL
		p.config.ConsentURL = consentURL
		return nil
	}
}

// WithLogger replaces the default nop logger.
func WithLogger(logger *zap.Logger) ProviderOption {
	return func(p *Provider) error {
		p.config.Logger = logger
		return nil
	}
}
