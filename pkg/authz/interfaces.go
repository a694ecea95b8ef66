package authz

import "context"

// ClientStore gives the engine read access to registered clients.
// Implementations must return an error wrapping [ErrNotFound] for unknown
// IDs.
type ClientStore interface {
	Client(ctx context.Context, id string) (*Client, error)
}

// ScopeStore resolves requested scope names against the scopes registered
// with the server. An unknown name fails the whole resolution.
type ScopeStore interface {
	Resolve(ctx context.Context, names []string) (Scopes, error)
}

// SessionProvider exposes the end-user session attached to the current
// request. A nil session with a nil error means no one is authenticated.
type SessionProvider interface {
	Session(ctx context.Context) (*Session, error)
}

// ConsentStore persists remembered consent decisions. Decision returns an
// error wrapping [ErrNotFound] when the subject/client pair has no
// remembered decision.
type ConsentStore interface {
	Decision(ctx context.Context, subject, clientID string) (*ConsentDecision, error)
	Save(ctx context.Context, decision *ConsentDecision) error
}

// InteractionStore persists suspended pipeline state. Consume atomically
// loads and deletes the state for the correlation ID, enforcing single use;
// a second call with the same ID must return an error wrapping
// [ErrNotFound]. Entry expiry is the store's responsibility.
type InteractionStore interface {
	Save(ctx context.Context, state *InteractionState) error
	Consume(ctx context.Context, correlationID string) (*InteractionState, error)
}

// IDTokenOptions carries the values bound into an identity token beyond the
// subject claims.
type IDTokenOptions struct {
	Nonce               string
	ACR                 string
	AuthenticatedAtUnix int64
	// AccessToken, AuthorizationCode and State, when present, are half
	// hashed into at_hash, c_hash and s_hash.
	AccessToken       string
	AuthorizationCode string
	State             string
}

// TokenIssuer mints the artifacts delivered by the authorization response.
// The engine never constructs or signs tokens itself.
type TokenIssuer interface {
	IssueCode(ctx context.Context, client *Client, subject Subject, params AuthorizationParameters, granted ScopeSet) (string, error)
	IssueAccessToken(ctx context.Context, client *Client, subject Subject, granted ScopeSet) (token string, tokenType TokenType, expiresInSecs int64, err error)
	IssueIDToken(ctx context.Context, client *Client, subject Subject, opts IDTokenOptions) (string, error)
}
