package authz

import "time"

// Subject is the authenticated end-user.
type Subject struct {
	ID     string         `json:"sub" bson:"sub"`
	Claims map[string]any `json:"claims,omitempty" bson:"claims,omitempty"`
}

// Session is the end-user's browser session as seen by the engine. It is
// established and owned by the hosting layer; the engine only reads it.
type Session struct {
	Subject Subject `json:"subject" bson:"subject"`
	// IdentityProvider identifies the upstream provider that authenticated
	// the subject, e.g. "local" or "google".
	IdentityProvider    string `json:"idp,omitempty" bson:"idp,omitempty"`
	ACR                 string `json:"acr,omitempty" bson:"acr,omitempty"`
	AuthenticatedAtUnix int64  `json:"auth_time" bson:"auth_time"`
	ExpiresAtUnix       int64  `json:"expires_at" bson:"expires_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().Unix() > s.ExpiresAtUnix
}

// AuthnAge is the number of seconds since the subject authenticated.
func (s *Session) AuthnAge() int {
	return int(time.Now().Unix() - s.AuthenticatedAtUnix)
}
