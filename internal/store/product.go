// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"catalogd/internal/models"
)

// ProductStore handles all product-related database operations.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore creates a new ProductStore with the given database connection.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, description, has_stock, active, category_id, created_by, created_on, edited_by, edited_on`

// List returns all products ordered by name.
func (s *ProductStore) List() ([]models.Product, error) {
	result, err := s.db.Query(`
		SELECT ` + productColumns + ` FROM products ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer result.Close()

	var products []models.Product
	for result.Next() {
		var p models.Product
		err := result.Scan(&p.ID, &p.Name, &p.Description, &p.HasStock, &p.Active,
			&p.CategoryID, &p.CreatedBy, &p.CreatedOn, &p.EditedBy, &p.EditedOn)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, result.Err()
}

// FindByID retrieves a product by its UUID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	p := &models.Product{}
	err := s.db.QueryRow(`
		SELECT `+productColumns+` FROM products WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.HasStock, &p.Active,
		&p.CategoryID, &p.CreatedBy, &p.CreatedOn, &p.EditedBy, &p.EditedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create persists a product built by models.NewProduct. Callers must have
// confirmed the referenced category exists.
func (s *ProductStore) Create(p *models.Product) error {
	_, err := s.db.Exec(`
		INSERT INTO products (id, name, description, has_stock, active, category_id, created_by, created_on, edited_by, edited_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.Name, p.Description, p.HasStock, p.Active, p.CategoryID,
		p.CreatedBy, p.CreatedOn, p.EditedBy, p.EditedOn)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Update persists the mutable fields of a product.
func (s *ProductStore) Update(p *models.Product) error {
	_, err := s.db.Exec(`
		UPDATE products SET name = $1, description = $2, has_stock = $3, category_id = $4, edited_by = $5, edited_on = $6
		WHERE id = $7
	`, p.Name, p.Description, p.HasStock, p.CategoryID, p.EditedBy, p.EditedOn, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product.
func (s *ProductStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
