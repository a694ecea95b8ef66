package authz

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by store implementations when an entity does not
// exist. An expired entry and a missing entry are indistinguishable to the
// engine, both fail the request the same way.
var ErrNotFound = errors.New("entity not found")

type ErrorCode string

const (
	ErrorCodeInvalidRequest          ErrorCode = "invalid_request"
	ErrorCodeInvalidClient           ErrorCode = "invalid_client"
	ErrorCodeInvalidRedirectURI      ErrorCode = "invalid_redirect_uri"
	ErrorCodeUnauthorizedClient      ErrorCode = "unauthorized_client"
	ErrorCodeUnsupportedResponseType ErrorCode = "unsupported_response_type"
	ErrorCodeInvalidScope            ErrorCode = "invalid_scope"
	ErrorCodeAccessDenied            ErrorCode = "access_denied"
	ErrorCodeLoginRequired           ErrorCode = "login_required"
	ErrorCodeConsentRequired         ErrorCode = "consent_required"
	ErrorCodeServerError             ErrorCode = "server_error"
)

type Error struct {
	Code        ErrorCode `json:"error,omitempty"`
	Description string    `json:"error_description,omitempty"`
	wrapped     error
}

func NewError(code ErrorCode, desc string) Error {
	return Error{
		Code:        code,
		Description: desc,
	}
}

func WrapError(code ErrorCode, desc string, err error) Error {
	return Error{
		Code:        code,
		Description: desc,
		wrapped:     err,
	}
}

func (err Error) Error() string {
	if err.wrapped == nil {
		return fmt.Sprintf("%s %s", err.Code, err.Description)
	}

	return fmt.Sprintf("%s %s: %v", err.Code, err.Description, err.wrapped)
}

func (err Error) Unwrap() error {
	return err.wrapped
}
