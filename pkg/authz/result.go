package authz

type ResultKind string

const (
	// ResultRedirect delivers parameters to the client's redirect URI, for
	// both success and client-redirectable errors.
	ResultRedirect ResultKind = "redirect"
	// ResultLocalError must be rendered by the server itself, the redirect
	// target could not be trusted.
	ResultLocalError     ResultKind = "local_error"
	ResultRequireLogin   ResultKind = "require_login"
	ResultRequireConsent ResultKind = "require_consent"
)

// Param is one response parameter. Parameters are kept as an ordered list so
// the wire output of a single response is deterministic.
type Param struct {
	Name  string
	Value string
}

// Result is the outcome of an authorization request or of a resumed
// interaction. The hosting layer translates it into an HTTP redirect, a
// rendered page, or a hand-off to the login/consent UI; the engine never
// builds raw URLs.
type Result struct {
	Kind ResultKind

	// Redirect outcome.
	RedirectURI  string
	ResponseMode ResponseMode
	Parameters   []Param

	// Local error outcome, also filled for redirected errors.
	ErrorCode        ErrorCode
	ErrorDescription string

	// Suspension outcomes.
	CorrelationID string
	ScopesToShow  ScopeSet
	LoginHint     string
}

// Parameter returns the named response parameter or "".
func (r Result) Parameter(name string) string {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

func (r Result) IsError() bool {
	return r.ErrorCode != ""
}
