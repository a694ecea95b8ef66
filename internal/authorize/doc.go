// Package authorize implements the authorization endpoint pipeline:
// request validation, the authentication and consent gates, response
// composition and the orchestration between them, including the suspend and
// resume cycle around external login and consent interactions.
//
// In terms of parameter validation, the redirect URI must ALWAYS be
// validated first. This ensures that any subsequent errors can be properly
// redirected to the client.
package authorize
