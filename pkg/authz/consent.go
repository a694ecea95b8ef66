package authz

// ConsentDecision records which scopes a subject granted to a client during
// a consent interaction. A decision with Remember set is persisted by the
// consent store and short-circuits future consent prompts as long as it
// covers the full requested scope set.
type ConsentDecision struct {
	Subject       string   `json:"sub" bson:"sub"`
	ClientID      string   `json:"client_id" bson:"client_id"`
	GrantedScopes ScopeSet `json:"granted_scopes" bson:"granted_scopes"`
	Denied        bool     `json:"denied,omitempty" bson:"denied,omitempty"`
	Remember      bool     `json:"remember,omitempty" bson:"remember,omitempty"`
	CreatedAtUnix int64    `json:"created_at" bson:"created_at"`
}

// Covers reports whether the decision grants every requested scope. A
// decision covering only a strict subset does not count, the user is
// prompted again rather than silently broadening a remembered grant.
func (d *ConsentDecision) Covers(requested ScopeSet) bool {
	return !d.Denied && requested.SubsetOf(d.GrantedScopes)
}
