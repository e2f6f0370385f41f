// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package token issues and verifies HMAC-SHA256 signed bearer tokens.
// Tokens are stateless: the payload carries the account identity, its
// claims, issuer, audience and an absolute UTC expiry, and is trusted purely
// on its signature. Nothing is persisted.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"catalogd/internal/models"
)

// Verification failure modes. Handlers report them to callers as one coarse
// invalid-token category (see Invalid); the distinction exists for
// diagnostics.
var (
	ErrMalformed        = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token is expired")
	ErrIssuerMismatch   = errors.New("token issuer mismatch")
	ErrAudienceMismatch = errors.New("token audience mismatch")
)

// Invalid reports whether err is any token verification failure.
func Invalid(err error) bool {
	return errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrIssuerMismatch) ||
		errors.Is(err, ErrAudienceMismatch)
}

// Registered payload keys that must not collide with custom claim types.
var reservedKeys = map[string]bool{
	"sub": true, "email": true, "iss": true, "aud": true,
	"exp": true, "iat": true, "nbf": true, "jti": true,
}

// Config holds the immutable token settings loaded at startup.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Identity is the verified content of a presented token.
type Identity struct {
	AccountID uuid.UUID
	Email     string
	Claims    models.Claims
}

// Codec signs and verifies tokens with a single symmetric key. It holds only
// immutable configuration and is safe for unbounded concurrent use.
type Codec struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewCodec validates the configuration and returns a ready codec. A missing
// signing key is a programmer error and fails here, at startup, rather than
// on the first request.
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing key must not be empty")
	}
	return &Codec{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
	}, nil
}

// Issue builds and signs a token for the account, embedding its email and
// every claim under its own payload key. Expiry is UTC now plus the
// configured TTL. Claims whose type collides with a registered payload key
// are skipped; the domain does not use such types.
func (c *Codec) Issue(accountID uuid.UUID, email string, claims models.Claims) (string, error) {
	now := time.Now().UTC()
	payload := jwt.MapClaims{
		"sub":   accountID.String(),
		"email": email,
		"iss":   c.issuer,
		"aud":   c.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}
	for _, claim := range claims {
		if reservedKeys[claim.Type] {
			continue
		}
		payload[claim.Type] = claim.Value
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, issuer, audience and expiry of a presented
// token and reconstructs the claim set. The signature is verified before any
// claim is inspected; a tampered token never partially succeeds.
func (c *Codec) Verify(tokenString string) (*Identity, error) {
	parsed, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrIssuerMismatch
		case errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, ErrAudienceMismatch
		default:
			return nil, ErrMalformed
		}
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformed
	}

	sub, _ := payload["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrMalformed
	}
	email, _ := payload["email"].(string)

	var claims models.Claims
	for key, value := range payload {
		if reservedKeys[key] {
			continue
		}
		if s, ok := value.(string); ok {
			claims = append(claims, models.Claim{Type: key, Value: s})
		}
	}

	return &Identity{AccountID: accountID, Email: email, Claims: claims}, nil
}
