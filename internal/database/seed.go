package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a default manager account, with the EmployeeCode claim that
// unlocks product and employee management, if no accounts exist yet.
func Seed(db *sql.DB) error {
	// Check if any accounts exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM accounts").Scan(&count); err != nil {
		return fmt.Errorf("seed check accounts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	var accountID string
	err = db.QueryRow(`
		INSERT INTO accounts (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, "admin@catalogd.local", string(hash)).Scan(&accountID)
	if err != nil {
		return fmt.Errorf("seed insert admin account: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO account_claims (account_id, claim_type, claim_value)
		VALUES ($1, 'Name', 'Administrator'), ($1, 'EmployeeCode', '005')
	`, accountID)
	if err != nil {
		return fmt.Errorf("seed insert admin claims: %w", err)
	}

	slog.Info("database seeded with default manager account",
		"email", "admin@catalogd.local",
		"password", "admin",
	)

	return nil
}
