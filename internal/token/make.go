// Package token provides the default token issuer. Authorization codes are
// opaque random strings, access tokens are signed JWTs per RFC 9068 and
// identity tokens are signed JWTs carrying the standard half hash claims.
package token

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/google/uuid"

	"github.com/rafaelq/go-authz/internal/strutil"
	"github.com/rafaelq/go-authz/internal/timeutil"
	"github.com/rafaelq/go-authz/pkg/authz"
)

const (
	defaultAuthorizationCodeLength = 30
	defaultAccessTokenLifetimeSecs = 600
	defaultIDTokenLifetimeSecs     = 600
)

type Issuer struct {
	issuer string
	jwk    jose.JSONWebKey

	AccessTokenLifetimeSecs int64
	IDTokenLifetimeSecs     int64
}

// NewIssuer creates an issuer signing with the given private JWK. The JWK's
// algorithm decides the signature and half hash algorithms.
func NewIssuer(issuer string, jwk jose.JSONWebKey) *Issuer {
	return &Issuer{
		issuer:                  issuer,
		jwk:                     jwk,
		AccessTokenLifetimeSecs: defaultAccessTokenLifetimeSecs,
		IDTokenLifetimeSecs:     defaultIDTokenLifetimeSecs,
	}
}

func (i *Issuer) IssueCode(
	_ context.Context,
	_ *authz.Client,
	_ authz.Subject,
	_ authz.AuthorizationParameters,
	_ authz.ScopeSet,
) (string, error) {
	return strutil.Random(defaultAuthorizationCodeLength)
}

func (i *Issuer) IssueAccessToken(
	_ context.Context,
	client *authz.Client,
	subject authz.Subject,
	granted authz.ScopeSet,
) (string, authz.TokenType, int64, error) {
	now := timeutil.TimestampNow()
	claims := map[string]any{
		authz.ClaimTokenID:  uuid.NewString(),
		authz.ClaimIssuer:   i.issuer,
		authz.ClaimSubject:  subject.ID,
		authz.ClaimClientID: client.ID,
		authz.ClaimScope:    granted.String(),
		authz.ClaimIssuedAt: now,
		authz.ClaimExpiry:   now + i.AccessTokenLifetimeSecs,
	}

	accessToken, err := i.sign(claims, "at+jwt")
	if err != nil {
		return "", "", 0, err
	}

	return accessToken, authz.TokenTypeBearer, i.AccessTokenLifetimeSecs, nil
}

func (i *Issuer) IssueIDToken(
	_ context.Context,
	client *authz.Client,
	subject authz.Subject,
	opts authz.IDTokenOptions,
) (string, error) {
	now := timeutil.TimestampNow()
	claims := map[string]any{
		authz.ClaimIssuer:   i.issuer,
		authz.ClaimSubject:  subject.ID,
		authz.ClaimAudience: client.ID,
		authz.ClaimIssuedAt: now,
		authz.ClaimExpiry:   now + i.IDTokenLifetimeSecs,
	}

	if opts.Nonce != "" {
		claims[authz.ClaimNonce] = opts.Nonce
	}
	if opts.ACR != "" {
		claims[authz.ClaimACR] = opts.ACR
	}
	if opts.AuthenticatedAtUnix != 0 {
		claims[authz.ClaimAuthenticationTime] = opts.AuthenticatedAtUnix
	}
	if opts.AccessToken != "" {
		claims[authz.ClaimAccessTokenHash] = halfHashClaim(opts.AccessToken, i.algorithm())
	}
	if opts.AuthorizationCode != "" {
		claims[authz.ClaimAuthorizationCodeHash] = halfHashClaim(opts.AuthorizationCode, i.algorithm())
	}
	if opts.State != "" {
		claims[authz.ClaimStateHash] = halfHashClaim(opts.State, i.algorithm())
	}

	for name, value := range subject.Claims {
		claims[name] = value
	}

	return i.sign(claims, "jwt")
}

func (i *Issuer) algorithm() jose.SignatureAlgorithm {
	return jose.SignatureAlgorithm(i.jwk.Algorithm)
}

func (i *Issuer) sign(claims map[string]any, typeHeader string) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: i.algorithm(), Key: i.jwk.Key},
		(&jose.SignerOptions{}).WithType(jose.ContentType(typeHeader)).WithHeader("kid", i.jwk.KeyID),
	)
	if err != nil {
		return "", fmt.Errorf("could not create the signer: %w", err)
	}

	signed, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		return "", fmt.Errorf("could not sign the token: %w", err)
	}

	return signed, nil
}

func halfHashClaim(claimValue string, algorithm jose.SignatureAlgorithm) string {
	var h hash.Hash
	switch algorithm {
	case jose.RS384, jose.ES384, jose.PS384, jose.HS384:
		h = sha512.New384()
	case jose.RS512, jose.ES512, jose.PS512, jose.HS512:
		h = sha512.New()
	default:
		h = sha256.New()
	}

	h.Write([]byte(claimValue))
	halfHashedClaim := h.Sum(nil)[:h.Size()/2]
	return base64.RawURLEncoding.EncodeToString(halfHashedClaim)
}

var _ authz.TokenIssuer = &Issuer{}
