// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"catalogd/internal/policy"
	"catalogd/internal/token"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// IdentityKey is the context key for the verified caller identity.
	IdentityKey contextKey = "identity"
)

// LoadIdentity verifies a Bearer token if one is presented and stores the
// resulting identity in the request context. Downstream handlers can access
// it via IdentityFromCtx(). This middleware does NOT enforce authentication;
// a missing or invalid token just leaves the request anonymous.
func LoadIdentity(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := codec.Verify(raw)
			if err != nil {
				// Treat as unauthenticated. Enforcement middleware
				// decides whether that matters.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth returns 401 for anonymous requests.
// Must be applied after LoadIdentity in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromCtx(r.Context()) == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePolicy returns 401 for anonymous requests and 403 when the caller's
// claims do not satisfy the named policy. Must be applied after LoadIdentity.
func RequirePolicy(reg *policy.Registry, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromCtx(r.Context())
			if identity == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if !reg.Allow(name, identity.Claims) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromCtx extracts the verified identity from the request context.
// Returns nil if the request is anonymous.
func IdentityFromCtx(ctx context.Context) *token.Identity {
	identity, _ := ctx.Value(IdentityKey).(*token.Identity)
	return identity
}

// bearerToken extracts the token from an Authorization: Bearer header.
// Returns empty string when the header is absent or uses another scheme.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
