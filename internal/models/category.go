// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"catalogd/internal/validation"
)

// Category groups products in the catalog. A product references exactly one
// category by ID; a category does not hold a reference back to its product —
// the product is discoverable by querying on the foreign key.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedBy string    `json:"created_by"`
	CreatedOn time.Time `json:"created_on"`
	EditedBy  string    `json:"edited_by"`
	EditedOn  time.Time `json:"edited_on"`
}

// NewCategory builds an active category with a fresh ID and UTC audit stamps,
// then validates it. The category is returned even when invalid so the
// notifications can be surfaced to the caller; check Valid() on the returned
// notifications before persisting.
func NewCategory(name, createdBy string) (*Category, validation.Notifications) {
	now := time.Now().UTC()
	c := &Category{
		ID:        uuid.New(),
		Name:      name,
		Active:    true,
		CreatedBy: createdBy,
		CreatedOn: now,
		EditedBy:  createdBy,
		EditedOn:  now,
	}
	return c, c.validate()
}

// EditInfo updates the editable fields, stamps a new edit time, and runs a
// fresh validation pass. Notifications from earlier passes never carry over.
func (c *Category) EditInfo(name string, active bool, editedBy string) validation.Notifications {
	c.Name = name
	c.Active = active
	c.EditedBy = editedBy
	c.EditedOn = time.Now().UTC()
	return c.validate()
}

func (c *Category) validate() validation.Notifications {
	return validation.NewContract().
		NotEmpty(c.Name, "Name").
		MinLen(c.Name, 3, "Name").
		NotEmpty(c.CreatedBy, "CreatedBy").
		NotEmpty(c.EditedBy, "EditedBy").
		Notifications()
}
