package authz

import (
	"slices"
	"strings"
)

type ResponseType string

const (
	ResponseTypeCode                   ResponseType = "code"
	ResponseTypeIDToken                ResponseType = "id_token"
	ResponseTypeToken                  ResponseType = "token"
	ResponseTypeCodeAndIDToken         ResponseType = "code id_token"
	ResponseTypeCodeAndToken           ResponseType = "code token"
	ResponseTypeIDTokenAndToken        ResponseType = "id_token token"
	ResponseTypeCodeAndIDTokenAndToken ResponseType = "code id_token token"
)

func (rt ResponseType) Contains(responseType ResponseType) bool {
	return slices.Contains(strings.Split(string(rt), " "), string(responseType))
}

// IsImplicit reports whether the response type delivers tokens directly in
// the redirect, which forbids query encoding.
func (rt ResponseType) IsImplicit() bool {
	return rt.Contains(ResponseTypeIDToken) || rt.Contains(ResponseTypeToken)
}

type ResponseMode string

const (
	ResponseModeQuery    ResponseMode = "query"
	ResponseModeFragment ResponseMode = "fragment"
	ResponseModeFormPost ResponseMode = "form_post"
)

func (rm ResponseMode) IsQuery() bool {
	return rm == ResponseModeQuery
}

type TokenType string

const (
	TokenTypeBearer TokenType = "Bearer"
)

type CodeChallengeMethod string

const (
	CodeChallengeMethodSHA256 CodeChallengeMethod = "S256"
	CodeChallengeMethodPlain  CodeChallengeMethod = "plain"
)

type PromptType string

const (
	PromptTypeNone          PromptType = "none"
	PromptTypeLogin         PromptType = "login"
	PromptTypeConsent       PromptType = "consent"
	PromptTypeSelectAccount PromptType = "select_account"
)

type DisplayValue string

const (
	DisplayValuePage  DisplayValue = "page"
	DisplayValuePopUp DisplayValue = "popup"
	DisplayValueTouch DisplayValue = "touch"
	DisplayValueWAP   DisplayValue = "wap"
)

const (
	ClaimTokenID               string = "jti"
	ClaimIssuer                string = "iss"
	ClaimSubject               string = "sub"
	ClaimAudience              string = "aud"
	ClaimClientID              string = "client_id"
	ClaimExpiry                string = "exp"
	ClaimIssuedAt              string = "iat"
	ClaimScope                 string = "scope"
	ClaimNonce                 string = "nonce"
	ClaimAuthenticationTime    string = "auth_time"
	ClaimACR                   string = "acr"
	ClaimIdentityProvider      string = "idp"
	ClaimAccessTokenHash       string = "at_hash"
	ClaimAuthorizationCodeHash string = "c_hash"
	ClaimStateHash             string = "s_hash"
)
