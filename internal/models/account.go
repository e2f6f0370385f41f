// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and the self-validating catalog entities used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Claim types used by this domain. Both are expected to be singular per
// account; callers look up the existing claim of a type before replacing it.
const (
	ClaimName         = "Name"
	ClaimEmployeeCode = "EmployeeCode"
)

// Account is an employee login identity. Claims attached to the account
// drive authorization and are embedded in issued tokens.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claim is a named attribute attached to exactly one account. The type+value
// pair is the identity of the claim; replacing one is modeled as
// remove-old-add-new, not update-in-place.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Claims is the set of claims presented by a caller or attached to an
// account.
type Claims []Claim

// Has reports whether a claim of the given type is present, any value.
func (c Claims) Has(claimType string) bool {
	_, ok := c.Get(claimType)
	return ok
}

// HasValue reports whether a claim with the exact type and value is present.
func (c Claims) HasValue(claimType, value string) bool {
	for _, claim := range c {
		if claim.Type == claimType && claim.Value == value {
			return true
		}
	}
	return false
}

// Get returns the first claim of the given type.
func (c Claims) Get(claimType string) (Claim, bool) {
	for _, claim := range c {
		if claim.Type == claimType {
			return claim, true
		}
	}
	return Claim{}, false
}

// Employee is the read model for employee listings: the account identity
// joined with its Name claim.
type Employee struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}
