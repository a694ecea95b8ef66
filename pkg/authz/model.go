package authz

// AuthorizationParameters are the parameters of an authorization request.
// State and nonce are opaque: the engine stores and echoes them, never
// interprets them.
type AuthorizationParameters struct {
	RedirectURI         string              `json:"redirect_uri,omitempty" bson:"redirect_uri,omitempty"`
	ResponseType        ResponseType        `json:"response_type,omitempty" bson:"response_type,omitempty"`
	ResponseMode        ResponseMode        `json:"response_mode,omitempty" bson:"response_mode,omitempty"`
	Scopes              string              `json:"scope,omitempty" bson:"scope,omitempty"`
	State               string              `json:"state,omitempty" bson:"state,omitempty"`
	Nonce               string              `json:"nonce,omitempty" bson:"nonce,omitempty"`
	Prompt              PromptType          `json:"prompt,omitempty" bson:"prompt,omitempty"`
	Display             DisplayValue        `json:"display,omitempty" bson:"display,omitempty"`
	UILocales           string              `json:"ui_locales,omitempty" bson:"ui_locales,omitempty"`
	ACRValues           string              `json:"acr_values,omitempty" bson:"acr_values,omitempty"`
	MaxAuthnAgeSecs     *int                `json:"max_age,omitempty" bson:"max_age,omitempty"`
	LoginHint           string              `json:"login_hint,omitempty" bson:"login_hint,omitempty"`
	CodeChallenge       string              `json:"code_challenge,omitempty" bson:"code_challenge,omitempty"`
	CodeChallengeMethod CodeChallengeMethod `json:"code_challenge_method,omitempty" bson:"code_challenge_method,omitempty"`
}

// ScopeSet parses the raw scope parameter into its deduplicated set form.
func (params AuthorizationParameters) ScopeSet() ScopeSet {
	return ParseScopes(params.Scopes)
}

// Request is a raw authorization request before validation.
type Request struct {
	ClientID string `json:"client_id"`
	AuthorizationParameters
}

// LoginOutcome is the verdict of the external login interaction.
type LoginOutcome struct {
	// Subject is nil when the login failed or was aborted.
	Subject *Subject
	// IdentityProvider and ACR describe how the subject was authenticated.
	IdentityProvider string
	ACR              string
	FailureReason    string
}

func (o LoginOutcome) Failed() bool {
	return o.Subject == nil
}
