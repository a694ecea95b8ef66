package authorize

import (
	"net/http"
	"strconv"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func newRequest(req *http.Request) authz.Request {
	params := authz.Request{
		ClientID: req.URL.Query().Get("client_id"),
		AuthorizationParameters: authz.AuthorizationParameters{
			RedirectURI:         req.URL.Query().Get("redirect_uri"),
			ResponseType:        authz.ResponseType(req.URL.Query().Get("response_type")),
			ResponseMode:        authz.ResponseMode(req.URL.Query().Get("response_mode")),
			Scopes:              req.URL.Query().Get("scope"),
			State:               req.URL.Query().Get("state"),
			Nonce:               req.URL.Query().Get("nonce"),
			Prompt:              authz.PromptType(req.URL.Query().Get("prompt")),
			Display:             authz.DisplayValue(req.URL.Query().Get("display")),
			UILocales:           req.URL.Query().Get("ui_locales"),
			ACRValues:           req.URL.Query().Get("acr_values"),
			LoginHint:           req.URL.Query().Get("login_hint"),
			CodeChallenge:       req.URL.Query().Get("code_challenge"),
			CodeChallengeMethod: authz.CodeChallengeMethod(req.URL.Query().Get("code_challenge_method")),
		},
	}

	if maxAge, err := strconv.Atoi(req.URL.Query().Get("max_age")); err == nil {
		params.MaxAuthnAgeSecs = &maxAge
	}

	return params
}

func newFormRequest(req *http.Request) authz.Request {
	params := authz.Request{
		ClientID: req.PostFormValue("client_id"),
		AuthorizationParameters: authz.AuthorizationParameters{
			RedirectURI:         req.PostFormValue("redirect_uri"),
			ResponseType:        authz.ResponseType(req.PostFormValue("response_type")),
			ResponseMode:        authz.ResponseMode(req.PostFormValue("response_mode")),
			Scopes:              req.PostFormValue("scope"),
			State:               req.PostFormValue("state"),
			Nonce:               req.PostFormValue("nonce"),
			Prompt:              authz.PromptType(req.PostFormValue("prompt")),
			Display:             authz.DisplayValue(req.PostFormValue("display")),
			UILocales:           req.PostFormValue("ui_locales"),
			ACRValues:           req.PostFormValue("acr_values"),
			LoginHint:           req.PostFormValue("login_hint"),
			CodeChallenge:       req.PostFormValue("code_challenge"),
			CodeChallengeMethod: authz.CodeChallengeMethod(req.PostFormValue("code_challenge_method")),
		},
	}

	if maxAge, err := strconv.Atoi(req.PostFormValue("max_age")); err == nil {
		params.MaxAuthnAgeSecs = &maxAge
	}

	return params
}

// response carries the parameters delivered in the redirect. parameters
// assembles them in a fixed order so the wire output of a response is
// deterministic.
type response struct {
	authorizationCode string
	accessToken       string
	tokenType         authz.TokenType
	expiresIn         int64
	idToken           string
	scopes            string
	state             string
	errorCode         authz.ErrorCode
	errorDescription  string
}

func (resp response) parameters() []authz.Param {
	var params []authz.Param

	if resp.authorizationCode != "" {
		params = append(params, authz.Param{Name: "code", Value: resp.authorizationCode})
	}
	if resp.accessToken != "" {
		params = append(params, authz.Param{Name: "access_token", Value: resp.accessToken})
		params = append(params, authz.Param{Name: "token_type", Value: string(resp.tokenType)})
		params = append(params, authz.Param{Name: "expires_in", Value: strconv.FormatInt(resp.expiresIn, 10)})
	}
	if resp.idToken != "" {
		params = append(params, authz.Param{Name: "id_token", Value: resp.idToken})
	}
	if resp.scopes != "" {
		params = append(params, authz.Param{Name: "scope", Value: resp.scopes})
	}
	if resp.errorCode != "" {
		params = append(params, authz.Param{Name: "error", Value: string(resp.errorCode)})
	}
	if resp.errorDescription != "" {
		params = append(params, authz.Param{Name: "error_description", Value: resp.errorDescription})
	}
	if resp.state != "" {
		params = append(params, authz.Param{Name: "state", Value: resp.state})
	}

	return params
}
