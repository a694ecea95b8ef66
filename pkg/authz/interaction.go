package authz

import "time"

type InteractionStage string

const (
	// StageLogin means the pipeline is waiting for the end-user to
	// authenticate.
	StageLogin InteractionStage = "login"
	// StageConsent means the pipeline is waiting for the end-user to grant
	// scopes.
	StageConsent InteractionStage = "consent"
)

// InteractionState is the suspended pipeline continuation stored while an
// external interaction (login, consent) completes. It is keyed by an
// unguessable correlation ID and consumed exactly once: resumption deletes
// the state before re-entering the pipeline, so a replayed correlation ID
// finds nothing.
type InteractionState struct {
	ID            string           `json:"id" bson:"_id"`
	CorrelationID string           `json:"correlation_id" bson:"correlation_id"`
	Stage         InteractionStage `json:"stage" bson:"stage"`
	ClientID      string           `json:"client_id" bson:"client_id"`
	// Parameters are the validated request parameters, stored verbatim so
	// resumption needs nothing from the original request.
	Parameters AuthorizationParameters `json:"parameters" bson:"parameters"`
	// Subject is set once the login stage completed.
	Subject             *Subject `json:"subject,omitempty" bson:"subject,omitempty"`
	IdentityProvider    string   `json:"idp,omitempty" bson:"idp,omitempty"`
	ACR                 string   `json:"acr,omitempty" bson:"acr,omitempty"`
	AuthenticatedAtUnix int64    `json:"auth_time,omitempty" bson:"auth_time,omitempty"`
	CreatedAtUnix       int64    `json:"created_at" bson:"created_at"`
	ExpiresAtUnix       int64    `json:"expires_at" bson:"expires_at"`
}

func (s *InteractionState) IsExpired() bool {
	return time.Now().Unix() > s.ExpiresAtUnix
}
