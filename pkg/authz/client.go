package authz

import (
	"slices"

	"golang.org/x/crypto/bcrypt"
)

type Client struct {
	ID string `json:"client_id" bson:"_id"`
	// HashedSecret is the bcrypt hash of the client secret. The secret
	// itself is never stored.
	HashedSecret string `json:"hashed_secret,omitempty" bson:"hashed_secret,omitempty"`
	Name         string `json:"client_name,omitempty" bson:"client_name,omitempty"`
	// RedirectURIs are matched exactly against the redirect_uri parameter.
	// Prefix or pattern matching would let an attacker receive codes and
	// tokens on an unregistered endpoint.
	RedirectURIs  []string       `json:"redirect_uris" bson:"redirect_uris"`
	Scopes        ScopeSet       `json:"scopes" bson:"scopes"`
	ResponseTypes []ResponseType `json:"response_types" bson:"response_types"`
	// RequireConsent makes the consent step mandatory unless a remembered
	// decision covers the requested scopes.
	RequireConsent bool `json:"require_consent,omitempty" bson:"require_consent,omitempty"`
	// RequirePKCE forces a code_challenge on authorization code requests.
	RequirePKCE bool `json:"require_pkce,omitempty" bson:"require_pkce,omitempty"`
	// IdentityProvider, when set, restricts which upstream provider the
	// end-user session must have been established with.
	IdentityProvider string `json:"identity_provider,omitempty" bson:"identity_provider,omitempty"`
}

func (c *Client) IsRedirectURIAllowed(redirectURI string) bool {
	return slices.Contains(c.RedirectURIs, redirectURI)
}

// AreScopesAllowed verifies that every requested scope is registered with
// the server and allowed for the client.
func (c *Client) AreScopesAllowed(serverScopes Scopes, requested ScopeSet) bool {
	for _, name := range requested {
		if !serverScopes.Contains(name) {
			return false
		}
		if !c.Scopes.Contains(name) {
			return false
		}
	}
	return true
}

func (c *Client) IsResponseTypeAllowed(responseType ResponseType) bool {
	return slices.Contains(c.ResponseTypes, responseType)
}

func (c *Client) IsSecretValid(secret string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.HashedSecret), []byte(secret))
	return err == nil
}

// HashSecret hashes a client secret for storage on the client record.
func HashSecret(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
