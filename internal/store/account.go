// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all catalog entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"catalogd/internal/models"
)

// ErrEmailTaken is returned when creating or updating an account with an
// email that already belongs to another account.
var ErrEmailTaken = errors.New("email already registered")

// AccountStore handles all account-related database operations.
type AccountStore struct {
	db *sql.DB
}

// NewAccountStore creates a new AccountStore with the given database connection.
func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

const accountColumns = `id, email, password_hash, created_at, updated_at`

// FindByEmail retrieves an account by email. Returns nil if not found.
func (s *AccountStore) FindByEmail(email string) (*models.Account, error) {
	a := &models.Account{}
	err := s.db.QueryRow(`
		SELECT `+accountColumns+` FROM accounts WHERE email = $1
	`, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return a, nil
}

// FindByID retrieves an account by its UUID. Returns nil if not found.
func (s *AccountStore) FindByID(id uuid.UUID) (*models.Account, error) {
	a := &models.Account{}
	err := s.db.QueryRow(`
		SELECT `+accountColumns+` FROM accounts WHERE id = $1
	`, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return a, nil
}

// Create inserts a new account with a bcrypt-hashed password.
func (s *AccountStore) Create(email, password string) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &models.Account{}
	err = s.db.QueryRow(`
		INSERT INTO accounts (email, password_hash)
		VALUES ($1, $2)
		RETURNING `+accountColumns,
		email, string(hash),
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

// Update replaces the email and password of an existing account. The
// password is rehashed.
func (s *AccountStore) Update(id uuid.UUID, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE accounts SET email = $1, password_hash = $2, updated_at = NOW() WHERE id = $3
	`, email, string(hash), id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *AccountStore) CheckPassword(a *models.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// ListEmployees returns one page of accounts joined with their Name claim,
// ordered by name. Pages are 1-based.
func (s *AccountStore) ListEmployees(page, rows int) ([]models.Employee, error) {
	result, err := s.db.Query(`
		SELECT a.id, a.email, c.claim_value AS name
		FROM accounts a
		INNER JOIN account_claims c ON c.account_id = a.id AND c.claim_type = $1
		ORDER BY c.claim_value
		OFFSET ($2 - 1) * $3 LIMIT $3
	`, models.ClaimName, page, rows)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer result.Close()

	var employees []models.Employee
	for result.Next() {
		var e models.Employee
		if err := result.Scan(&e.ID, &e.Email, &e.Name); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, result.Err()
}

// GetEmployee returns the account joined with its Name claim. Returns nil
// if the account does not exist or has no Name claim.
func (s *AccountStore) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	e := &models.Employee{}
	err := s.db.QueryRow(`
		SELECT a.id, a.email, c.claim_value AS name
		FROM accounts a
		INNER JOIN account_claims c ON c.account_id = a.id AND c.claim_type = $1
		WHERE a.id = $2
	`, models.ClaimName, id).Scan(&e.ID, &e.Email, &e.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// isUniqueViolation reports whether the error is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
