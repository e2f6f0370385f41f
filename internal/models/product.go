// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"catalogd/internal/validation"
)

// Product is a catalog item belonging to one category. Whether the
// referenced category actually exists is a persistence question checked by
// the caller before construction; the entity only validates that a category
// ID was supplied at all.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HasStock    bool      `json:"has_stock"`
	Active      bool      `json:"active"`
	CategoryID  uuid.UUID `json:"category_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedOn   time.Time `json:"created_on"`
	EditedBy    string    `json:"edited_by"`
	EditedOn    time.Time `json:"edited_on"`
}

// NewProduct builds an active product with a fresh ID and UTC audit stamps,
// then validates it. Like NewCategory, an invalid product is still returned
// alongside its notifications.
func NewProduct(name, description string, hasStock bool, categoryID uuid.UUID, createdBy string) (*Product, validation.Notifications) {
	now := time.Now().UTC()
	p := &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		HasStock:    hasStock,
		Active:      true,
		CategoryID:  categoryID,
		CreatedBy:   createdBy,
		CreatedOn:   now,
		EditedBy:    createdBy,
		EditedOn:    now,
	}
	return p, p.validate()
}

// EditInfo updates the editable fields, stamps a new edit time, and runs a
// fresh validation pass. The active flag is not part of the editable set and
// keeps its value.
func (p *Product) EditInfo(name, description string, hasStock bool, categoryID uuid.UUID, editedBy string) validation.Notifications {
	p.Name = name
	p.Description = description
	p.HasStock = hasStock
	p.CategoryID = categoryID
	p.EditedBy = editedBy
	p.EditedOn = time.Now().UTC()
	return p.validate()
}

func (p *Product) validate() validation.Notifications {
	return validation.NewContract().
		NotEmpty(p.Name, "Name").
		MinLen(p.Name, 3, "Name").
		NotEmpty(p.Description, "Description").
		MinLen(p.Description, 3, "Description").
		NotNilUUID(p.CategoryID, "CategoryId").
		NotEmpty(p.CreatedBy, "CreatedBy").
		NotEmpty(p.EditedBy, "EditedBy").
		Notifications()
}
