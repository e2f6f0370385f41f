// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"catalogd/internal/models"
)

// ErrCategoryInUse is returned when deleting a category that products still
// reference.
var ErrCategoryInUse = errors.New("category has products attached")

// CategoryStore handles all category-related database operations.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore with the given database connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, active, created_by, created_on, edited_by, edited_on`

// List returns all categories ordered by name.
func (s *CategoryStore) List() ([]models.Category, error) {
	result, err := s.db.Query(`
		SELECT ` + categoryColumns + ` FROM categories ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer result.Close()

	var categories []models.Category
	for result.Next() {
		var c models.Category
		err := result.Scan(&c.ID, &c.Name, &c.Active, &c.CreatedBy, &c.CreatedOn, &c.EditedBy, &c.EditedOn)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, result.Err()
}

// FindByID retrieves a category by its UUID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(`
		SELECT `+categoryColumns+` FROM categories WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Active, &c.CreatedBy, &c.CreatedOn, &c.EditedBy, &c.EditedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create persists a category built by models.NewCategory.
func (s *CategoryStore) Create(c *models.Category) error {
	_, err := s.db.Exec(`
		INSERT INTO categories (id, name, active, created_by, created_on, edited_by, edited_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID, c.Name, c.Active, c.CreatedBy, c.CreatedOn, c.EditedBy, c.EditedOn)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Update persists the mutable fields of a category.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET name = $1, active = $2, edited_by = $3, edited_on = $4
		WHERE id = $5
	`, c.Name, c.Active, c.EditedBy, c.EditedOn, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category. Fails with ErrCategoryInUse when products still
// reference it.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// isForeignKeyViolation reports whether the error is a PostgreSQL foreign
// key constraint violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
