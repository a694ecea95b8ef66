package oidc

import (
	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/pkg/authz"
)

// Configuration holds everything the engine needs to process authorization
// requests: protocol settings plus the collaborator implementations. It is
// built once by the provider and shared, read only, by every request.
type Configuration struct {
	// Issuer is the server's identifier, used as the "iss" claim by the
	// default token issuer.
	Issuer string

	Scopes               authz.Scopes
	ResponseTypes        []authz.ResponseType
	ResponseModes        []authz.ResponseMode
	CodeChallengeMethods []authz.CodeChallengeMethod
	ACRs                 []string
	DisplayValues        []authz.DisplayValue

	// AutoGrantedScopes never appear on the consent screen and are granted
	// without an explicit decision.
	AutoGrantedScopes authz.ScopeSet

	// InteractionLifetimeSecs bounds how long a suspended interaction may
	// wait for the end-user before the store expires it.
	InteractionLifetimeSecs int64

	// PKCERequiredForPublicClients applies on top of each client's own
	// RequirePKCE flag.
	PKCERequiredForPublicClients bool

	// LoginURL and ConsentURL locate the interaction pages the HTTP layer
	// sends the user agent to when the pipeline suspends. The correlation ID
	// is appended as a query parameter.
	LoginURL   string
	ConsentURL string

	ClientStore      authz.ClientStore
	ScopeStore       authz.ScopeStore
	SessionProvider  authz.SessionProvider
	ConsentStore     authz.ConsentStore
	InteractionStore authz.InteractionStore
	TokenIssuer      authz.TokenIssuer

	Logger *zap.Logger
}
