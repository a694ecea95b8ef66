// Package provider configures and exposes the authorization endpoint engine.
// A [Provider] is built once with [New] and then used either as an HTTP
// handler or through its engine level methods.
package provider
