// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package validation provides rule evaluation for domain entities.
// Failed business rules are collected as notifications — plain data the
// caller inspects — never panics or errors.
package validation

// Notification records a single field-scoped validation failure.
type Notification struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Notifications is an ordered list of validation failures produced by one
// validation pass. Insertion order is preserved so error reporting is
// deterministic.
type Notifications []Notification

// Valid reports whether the pass produced no failures.
func (n Notifications) Valid() bool {
	return len(n) == 0
}

// Group collects messages by field name for presentation, keeping the
// per-field message order. It is a pure transform; the receiver is not
// modified.
func (n Notifications) Group() map[string][]string {
	if len(n) == 0 {
		return nil
	}
	grouped := make(map[string][]string)
	for _, note := range n {
		grouped[note.Field] = append(grouped[note.Field], note.Message)
	}
	return grouped
}

// Fields returns the field names in order of first appearance.
func (n Notifications) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, note := range n {
		if !seen[note.Field] {
			seen[note.Field] = true
			fields = append(fields, note.Field)
		}
	}
	return fields
}
