package provider

import (
	"errors"
	"slices"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func (p Provider) validate() error {
	config := p.config

	if config.Issuer == "" {
		return errors.New("the issuer is required")
	}

	if config.SessionProvider == nil {
		return errors.New("a session provider is required")
	}

	if slices.Contains(config.ResponseModes, authz.ResponseMode("")) {
		return errors.New("invalid response mode")
	}

	for _, scope := range config.AutoGrantedScopes {
		if !config.Scopes.Contains(scope) {
			return errors.New("auto granted scopes must be registered scopes")
		}
	}

	return nil
}
