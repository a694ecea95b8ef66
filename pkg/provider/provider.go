package provider

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-jose/go-jose/v4"

	"github.com/rafaelq/go-authz/internal/authorize"
	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/pkg/authz"
)

type Provider struct {
	config *oidc.Configuration
}

// New creates an authorization endpoint provider. By default all entities
// are stored in memory and tokens are signed with the given JWK.
func New(
	issuer string,
	privateJWK jose.JSONWebKey,
	opts ...ProviderOption,
) (
	Provider,
	error,
) {
	p := Provider{
		config: &oidc.Configuration{
			Issuer: issuer,
		},
	}

	for _, opt := range opts {
		if err := opt(&p); err != nil {
			return Provider{}, err
		}
	}

	p.setDefaults(privateJWK)

	if err := p.validate(); err != nil {
		return Provider{}, err
	}

	return p, nil
}

// Handler returns an HTTP handler exposing the authorization endpoint and
// the interaction callback endpoints.
//
//	server := http.NewServeMux()
//	server.Handle("/", p.Handler())
func (p Provider) Handler() http.Handler {
	router := chi.NewRouter()
	authorize.RegisterHandlers(router, p.config)
	return router
}

// Authorize runs the pipeline for a request outside of HTTP, for hosting
// layers that own their own transport.
func (p Provider) Authorize(ctx context.Context, req authz.Request) authz.Result {
	return authorize.InitAuth(oidc.NewContext(ctx, p.config), req)
}

// ResumeLogin resumes a pipeline suspended on the login stage.
func (p Provider) ResumeLogin(ctx context.Context, correlationID string, outcome authz.LoginOutcome) authz.Result {
	return authorize.ResumeLogin(oidc.NewContext(ctx, p.config), correlationID, outcome)
}

// ResumeConsent resumes a pipeline suspended on the consent stage.
func (p Provider) ResumeConsent(ctx context.Context, correlationID string, decision authz.ConsentDecision) authz.Result {
	return authorize.ResumeConsent(oidc.NewContext(ctx, p.config), correlationID, decision)
}
