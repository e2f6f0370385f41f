// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"catalogd/internal/models"
)

var (
	// ErrClaimNotFound is returned by ReplaceClaim when the old claim does
	// not exist on the account.
	ErrClaimNotFound = errors.New("claim not found")

	// ErrDuplicateClaim is returned when adding or replacing would produce
	// two identical claims on the same account.
	ErrDuplicateClaim = errors.New("claim already present")
)

// ClaimStore handles the claims attached to accounts.
type ClaimStore struct {
	db *sql.DB
}

// NewClaimStore creates a new ClaimStore with the given database connection.
func NewClaimStore(db *sql.DB) *ClaimStore {
	return &ClaimStore{db: db}
}

// GetClaims returns all claims of an account, ordered by type then value so
// repeated calls produce a stable listing.
func (s *ClaimStore) GetClaims(accountID uuid.UUID) (models.Claims, error) {
	result, err := s.db.Query(`
		SELECT claim_type, claim_value FROM account_claims
		WHERE account_id = $1
		ORDER BY claim_type, claim_value
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("get claims: %w", err)
	}
	defer result.Close()

	var claims models.Claims
	for result.Next() {
		var c models.Claim
		if err := result.Scan(&c.Type, &c.Value); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, result.Err()
}

// AddClaims attaches claims to an account in a single transaction. Either
// all claims are added or none.
func (s *ClaimStore) AddClaims(accountID uuid.UUID, claims models.Claims) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin add claims: %w", err)
	}
	defer tx.Rollback()

	for _, c := range claims {
		_, err := tx.Exec(`
			INSERT INTO account_claims (account_id, claim_type, claim_value)
			VALUES ($1, $2, $3)
		`, accountID, c.Type, c.Value)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateClaim
			}
			return fmt.Errorf("add claim %s: %w", c.Type, err)
		}
	}
	return tx.Commit()
}

// ReplaceClaim atomically swaps one claim for another. The old claim is
// matched by both type and value; if it is missing the replacement fails with
// ErrClaimNotFound and the account's claim set is unchanged.
func (s *ClaimStore) ReplaceClaim(accountID uuid.UUID, old, new models.Claim) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace claim: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		DELETE FROM account_claims
		WHERE account_id = $1 AND claim_type = $2 AND claim_value = $3
	`, accountID, old.Type, old.Value)
	if err != nil {
		return fmt.Errorf("remove old claim: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove old claim: %w", err)
	}
	if deleted == 0 {
		return ErrClaimNotFound
	}

	_, err = tx.Exec(`
		INSERT INTO account_claims (account_id, claim_type, claim_value)
		VALUES ($1, $2, $3)
	`, accountID, new.Type, new.Value)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateClaim
		}
		return fmt.Errorf("insert new claim: %w", err)
	}
	return tx.Commit()
}
