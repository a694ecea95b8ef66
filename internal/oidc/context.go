package oidc

import (
	"context"

	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/pkg/authz"
)

// Context carries the request-scoped context together with the shared
// configuration, and wraps the collaborator calls so the engine packages
// never touch the stores directly.
type Context struct {
	context.Context
	*Configuration
}

func NewContext(ctx context.Context, config *Configuration) Context {
	return Context{
		Context:       ctx,
		Configuration: config,
	}
}

func (ctx Context) Client(id string) (*authz.Client, error) {
	return ctx.ClientStore.Client(ctx, id)
}

func (ctx Context) ResolveScopes(names []string) (authz.Scopes, error) {
	return ctx.ScopeStore.Resolve(ctx, names)
}

func (ctx Context) Session() (*authz.Session, error) {
	return ctx.SessionProvider.Session(ctx)
}

func (ctx Context) Consent(subject, clientID string) (*authz.ConsentDecision, error) {
	return ctx.ConsentStore.Decision(ctx, subject, clientID)
}

func (ctx Context) SaveConsent(decision *authz.ConsentDecision) error {
	return ctx.ConsentStore.Save(ctx, decision)
}

func (ctx Context) SaveInteraction(state *authz.InteractionState) error {
	return ctx.InteractionStore.Save(ctx, state)
}

// ConsumeInteraction loads and deletes the state for the correlation ID.
// Expired and replayed IDs both surface as not found.
func (ctx Context) ConsumeInteraction(correlationID string) (*authz.InteractionState, error) {
	return ctx.InteractionStore.Consume(ctx, correlationID)
}

func (ctx Context) IssueCode(client *authz.Client, subject authz.Subject, params authz.AuthorizationParameters, granted authz.ScopeSet) (string, error) {
	return ctx.TokenIssuer.IssueCode(ctx, client, subject, params, granted)
}

func (ctx Context) IssueAccessToken(client *authz.Client, subject authz.Subject, granted authz.ScopeSet) (string, authz.TokenType, int64, error) {
	return ctx.TokenIssuer.IssueAccessToken(ctx, client, subject, granted)
}

func (ctx Context) IssueIDToken(client *authz.Client, subject authz.Subject, opts authz.IDTokenOptions) (string, error) {
	return ctx.TokenIssuer.IssueIDToken(ctx, client, subject, opts)
}

func (ctx Context) Log() *zap.Logger {
	if ctx.Logger == nil {
		return zap.NewNop()
	}
	return ctx.Logger
}
