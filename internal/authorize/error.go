package authorize

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/internal/oidc"
	"github.com/rafaelq/go-authz/pkg/authz"
)

// redirectionError is a failure raised after the redirect URI was validated,
// so it can be delivered to the client. It carries the trusted parameters to
// pick the response mode and echo the state.
type redirectionError struct {
	code    authz.ErrorCode
	desc    string
	wrapped error
	authz.AuthorizationParameters
}

func (err redirectionError) Error() string {
	return fmt.Sprintf("%s %s", err.code, err.desc)
}

func (err redirectionError) Unwrap() error {
	return err.wrapped
}

func newRedirectionError(
	code authz.ErrorCode,
	desc string,
	params authz.AuthorizationParameters,
) error {
	return redirectionError{
		code:                    code,
		desc:                    desc,
		AuthorizationParameters: params,
	}
}

func wrapRedirectionError(
	code authz.ErrorCode,
	desc string,
	params authz.AuthorizationParameters,
	err error,
) error {
	return redirectionError{
		code:                    code,
		desc:                    desc,
		AuthorizationParameters: params,
		wrapped:                 err,
	}
}

// errorResult maps a pipeline failure to its terminal outcome. Failures
// raised before the redirect URI was trusted become local errors; everything
// else goes back to the client encoded per the response mode rule.
func errorResult(ctx oidc.Context, err error) authz.Result {
	var redirectErr redirectionError
	if errors.As(err, &redirectErr) {
		return redirectErrorResult(ctx, redirectErr.code, redirectErr.desc, redirectErr.AuthorizationParameters)
	}

	var oauthErr authz.Error
	if errors.As(err, &oauthErr) {
		return localErrorResult(ctx, oauthErr.Code, oauthErr.Description)
	}

	return localErrorResult(ctx, authz.ErrorCodeServerError, "internal error")
}

func localErrorResult(ctx oidc.Context, code authz.ErrorCode, desc string) authz.Result {
	ctx.Log().Info("authorization failed locally",
		zap.String("error", string(code)), zap.String("description", desc))
	return authz.Result{
		Kind:             authz.ResultLocalError,
		ErrorCode:        code,
		ErrorDescription: desc,
	}
}

func redirectErrorResult(
	ctx oidc.Context,
	code authz.ErrorCode,
	desc string,
	params authz.AuthorizationParameters,
) authz.Result {
	ctx.Log().Info("authorization failed, redirecting error to client",
		zap.String("error", string(code)), zap.String("description", desc))

	resp := response{
		errorCode:        code,
		errorDescription: desc,
		state:            params.State,
	}
	return authz.Result{
		Kind:             authz.ResultRedirect,
		RedirectURI:      params.RedirectURI,
		ResponseMode:     responseMode(params),
		Parameters:       resp.parameters(),
		ErrorCode:        code,
		ErrorDescription: desc,
	}
}
