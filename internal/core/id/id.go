// Package id generates opaque unique identifiers for persisted records.
// Identifiers are UUIDv7 strings: time-ordered, so listings sorted by id
// follow creation order.
package id

import (
	"github.com/google/uuid"
)

// New generates a new identifier.
func New() string {
	v, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.NewString()
	}
	return v.String()
}

// Valid reports whether s parses as a UUID of any version. Documents written
// by earlier releases carry UUIDv4 identifiers, so no version is enforced.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
