// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"catalogd/internal/auth"
)

// Auth groups the token endpoint handlers.
type Auth struct {
	authenticator *auth.Authenticator
}

// NewAuth creates a new Auth handler group.
func NewAuth(authenticator *auth.Authenticator) *Auth {
	return &Auth{authenticator: authenticator}
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token exchanges employee credentials for a signed bearer token.
// POST /token
func (a *Auth) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	signed, err := a.authenticator.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": signed})
}
