// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Contract evaluates a chain of rules against named fields, appending one
// notification per failed rule. Each check accepts an optional custom
// message; when omitted, a default message is used. A Contract is built,
// consumed once via Notifications, and discarded — validation state never
// outlives the pass that produced it.
type Contract struct {
	notes Notifications
}

// NewContract starts an empty rule chain.
func NewContract() *Contract {
	return &Contract{}
}

// NotEmpty fails when the value is the empty string.
func (c *Contract) NotEmpty(value, field string, message ...string) *Contract {
	if value == "" {
		c.add(field, message, fmt.Sprintf("%s is required", field))
	}
	return c
}

// MinLen fails when the value is shorter than min runes. The empty string is
// left to NotEmpty so a missing value reports one failure, not two.
func (c *Contract) MinLen(value string, min int, field string, message ...string) *Contract {
	if value != "" && utf8.RuneCountInString(value) < min {
		c.add(field, message, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	return c
}

// NotNil fails when the value is nil.
func (c *Contract) NotNil(value any, field string, message ...string) *Contract {
	if value == nil {
		c.add(field, message, fmt.Sprintf("%s is required", field))
	}
	return c
}

// NotNilUUID fails when the identifier is the zero UUID. This is the
// not-null check for foreign keys carried as uuid.UUID values.
func (c *Contract) NotNilUUID(id uuid.UUID, field string, message ...string) *Contract {
	if id == uuid.Nil {
		c.add(field, message, fmt.Sprintf("%s is required", field))
	}
	return c
}

// GreaterOrEqual fails when value < min.
func (c *Contract) GreaterOrEqual(value, min int, field string, message ...string) *Contract {
	if value < min {
		c.add(field, message, fmt.Sprintf("%s must be greater or equal to %d", field, min))
	}
	return c
}

// Notifications returns the failures accumulated by the chain, in the order
// the rules were evaluated.
func (c *Contract) Notifications() Notifications {
	return c.notes
}

func (c *Contract) add(field string, custom []string, fallback string) {
	msg := fallback
	if len(custom) > 0 && custom[0] != "" {
		msg = custom[0]
	}
	c.notes = append(c.notes, Notification{Field: field, Message: msg})
}
