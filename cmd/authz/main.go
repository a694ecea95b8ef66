// Command authz runs a development authorization server backed by in-memory
// stores, with a pre-registered confidential client for manual testing.
package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-jose/go-jose/v4"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rafaelq/go-authz/internal/storage"
	"github.com/rafaelq/go-authz/pkg/authz"
	"github.com/rafaelq/go-authz/pkg/provider"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	v := viper.New()
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("issuer", "http://localhost:8080")
	v.SetDefault("interaction_lifetime_secs", 600)
	v.SetConfigName("authz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/authz")
	v.SetEnvPrefix("AUTHZ")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}
	jwk := jose.JSONWebKey{
		Key:       privateKey,
		KeyID:     uuid.NewString(),
		Algorithm: string(jose.RS256),
		Use:       "sig",
	}

	clients := storage.NewClientManager(100)
	if err := seedClients(clients); err != nil {
		return err
	}

	p, err := provider.New(
		v.GetString("issuer"),
		jwk,
		provider.WithClientStore(clients),
		provider.WithScopes(authz.ScopeOpenID, authz.ScopeProfile, authz.ScopeEmail),
		provider.WithSessionProvider(&cookieSessionProvider{}),
		provider.WithInteractionLifetime(v.GetInt64("interaction_lifetime_secs")),
		provider.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.Handler())
	router.Mount("/", p.Handler())

	addr := v.GetString("listen_addr")
	logger.Info("starting the authorization server", zap.String("addr", addr))
	return http.ListenAndServe(addr, router)
}

func seedClients(clients *storage.ClientManager) error {
	hashedSecret, err := authz.HashSecret("secret")
	if err != nil {
		return err
	}

	return clients.Save(context.Background(), &authz.Client{
		ID:           "demo",
		HashedSecret: hashedSecret,
		Name:         "Demo Client",
		RedirectURIs: []string{"http://localhost:9090/callback"},
		Scopes:       authz.ScopeSet{"openid", "profile", "email"},
		ResponseTypes: []authz.ResponseType{
			authz.ResponseTypeCode,
			authz.ResponseTypeCodeAndIDToken,
		},
	})
}

// cookieSessionProvider is a stand-in session source for local development.
// No one is ever authenticated, so every request suspends on login.
type cookieSessionProvider struct{}

func (p *cookieSessionProvider) Session(_ context.Context) (*authz.Session, error) {
	return nil, nil
}
