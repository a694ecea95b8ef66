// Package oidc defines the configuration and request context shared by the
// engine's internal packages.
package oidc
