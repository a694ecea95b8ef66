package authorize

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// RegisterHandlers mounts the authorization endpoint and the interaction
// callback endpoints.
func RegisterHandlers(router chi.Router, config *oidc.Configuration) {
	router.Get("/authorize", handler(config, handleAuthorize))
	router.Post("/authorize", handler(config, handleAuthorizePost))
	router.Post("/authorize/login", handler(config, handleLoginCallback))
	router.Post("/authorize/consent", handler(config, handleConsentCallback))
}

func handler(
	config *oidc.Configuration,
	exec func(ctx oidc.Context, req *http.Request) authz.Result,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := oidc.NewContext(req.Context(), config)
		writeResult(ctx, w, exec(ctx, req))
	}
}

func handleAuthorize(ctx oidc.Context, req *http.Request) authz.Result {
	return InitAuth(ctx, newRequest(req))
}

func handleAuthorizePost(ctx oidc.Context, req *http.Request) authz.Result {
	return InitAuth(ctx, newFormRequest(req))
}

// handleLoginCallback resumes a pending authorization after the login page
// finished. The subject comes from the session the hosting layer
// established, not from the form, so a forged callback cannot authenticate
// anyone.
func handleLoginCallback(ctx oidc.Context, req *http.Request) authz.Result {
	correlationID := req.PostFormValue("correlation_id")

	session, err := ctx.Session()
	if err != nil {
		ctx.Log().Error("could not load the session", zap.Error(err))
		return ResumeLogin(ctx, correlationID, authz.LoginOutcome{
			FailureReason: "session unavailable",
		})
	}

	if session == nil || session.IsExpired() {
		return ResumeLogin(ctx, correlationID, authz.LoginOutcome{
			FailureReason: "end-user not authenticated",
		})
	}

	return ResumeLogin(ctx, correlationID, authz.LoginOutcome{
		Subject:          &session.Subject,
		IdentityProvider: session.IdentityProvider,
		ACR:              session.ACR,
	})
}

func handleConsentCallback(ctx oidc.Context, req *http.Request) authz.Result {
	correlationID := req.PostFormValue("correlation_id")

	decision := authz.ConsentDecision{
		GrantedScopes: authz.ParseScopes(req.PostFormValue("scope")),
		Denied:        req.PostFormValue("denied") == "true",
		Remember:      req.PostFormValue("remember") == "true",
	}
	return ResumeConsent(ctx, correlationID, decision)
}

func writeResult(ctx oidc.Context, w http.ResponseWriter, result authz.Result) {
	switch result.Kind {
	case authz.ResultRedirect:
		writeRedirect(ctx, w, result)
	case authz.ResultRequireLogin:
		redirectToInteraction(w, ctx.LoginURL, result.CorrelationID)
	case authz.ResultRequireConsent:
		redirectToInteraction(w, ctx.ConsentURL, result.CorrelationID)
	default:
		writeLocalError(ctx, w, result)
	}
}

func writeRedirect(ctx oidc.Context, w http.ResponseWriter, result authz.Result) {
	switch result.ResponseMode {
	case authz.ResponseModeFormPost:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := formPostTemplate.Execute(w, formPostPage{
			RedirectURI: result.RedirectURI,
			Parameters:  result.Parameters,
		}); err != nil {
			ctx.Log().Error("could not render the form post page", zap.Error(err))
		}
	case authz.ResponseModeFragment:
		w.Header().Set("Location", urlWithFragmentParams(result.RedirectURI, result.Parameters))
		w.WriteHeader(http.StatusSeeOther)
	default:
		w.Header().Set("Location", urlWithQueryParams(result.RedirectURI, result.Parameters))
		w.WriteHeader(http.StatusSeeOther)
	}
}

func redirectToInteraction(w http.ResponseWriter, baseURL, correlationID string) {
	w.Header().Set("Location", urlWithQueryParams(baseURL, []authz.Param{
		{Name: "correlation_id", Value: correlationID},
	}))
	w.WriteHeader(http.StatusSeeOther)
}

func writeLocalError(ctx oidc.Context, w http.ResponseWriter, result authz.Result) {
	status := http.StatusBadRequest
	if result.ErrorCode == authz.ErrorCodeServerError {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(authz.NewError(result.ErrorCode, result.ErrorDescription)); err != nil {
		ctx.Log().Error("could not write the error response", zap.Error(err))
	}
}

func urlWithQueryParams(rawURL string, params []authz.Param) string {
	if len(params) == 0 {
		return rawURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsedURL.Query()
	for _, param := range params {
		query.Set(param.Name, param.Value)
	}
	parsedURL.RawQuery = query.Encode()

	return parsedURL.String()
}

func urlWithFragmentParams(rawURL string, params []authz.Param) string {
	if len(params) == 0 {
		return rawURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	fragment := url.Values{}
	for _, param := range params {
		fragment.Set(param.Name, param.Value)
	}
	parsedURL.Fragment = fragment.Encode()
	parsedURL.RawFragment = fragment.Encode()

	return parsedURL.String()
}

type formPostPage struct {
	RedirectURI string
	Parameters  []authz.Param
}

var formPostTemplate = template.Must(template.New("form_post").Parse(`
<!DOCTYPE html>
<html>
<body onload="document.forms[0].submit()">
	<form method="post" action="{{ .RedirectURI }}">
		{{ range .Parameters }}
		<input type="hidden" name="{{ .Name }}" value="{{ .Value }}"/>
		{{ end }}
	</form>
</body>
</html>
`))
