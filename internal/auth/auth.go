// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth turns employee credentials into signed bearer tokens.
package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"catalogd/internal/models"
	"catalogd/internal/token"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. Keeping the two indistinguishable prevents user enumeration.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AccountSource looks up login accounts. *store.AccountStore satisfies it;
// tests substitute an in-memory fake.
type AccountSource interface {
	FindByEmail(email string) (*models.Account, error)
	CheckPassword(a *models.Account, password string) bool
}

// ClaimSource loads the claims attached to an account.
type ClaimSource interface {
	GetClaims(accountID uuid.UUID) (models.Claims, error)
}

// Authenticator composes account lookup, password checking and token
// issuance into the login flow.
type Authenticator struct {
	accounts AccountSource
	claims   ClaimSource
	codec    *token.Codec
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(accounts AccountSource, claims ClaimSource, codec *token.Codec) *Authenticator {
	return &Authenticator{accounts: accounts, claims: claims, codec: codec}
}

// Login verifies the credentials and returns a signed token embedding the
// account's identity, email and current claim set.
func (a *Authenticator) Login(email, password string) (string, error) {
	account, err := a.accounts.FindByEmail(email)
	if err != nil {
		return "", fmt.Errorf("look up account: %w", err)
	}
	if account == nil || !a.accounts.CheckPassword(account, password) {
		return "", ErrInvalidCredentials
	}

	claims, err := a.claims.GetClaims(account.ID)
	if err != nil {
		return "", fmt.Errorf("load claims: %w", err)
	}

	signed, err := a.codec.Issue(account.ID, account.Email, claims)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
