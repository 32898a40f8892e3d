// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a single address-book entry. The ID is a database-generated
// surrogate key and is never reused after deletion.
type Contact struct {
	ID          int64      // Surrogate key assigned by the storage layer on creation.
	OwnerID     *uuid.UUID // The user that created this entry, nil when created anonymously.
	Name        string     // Display name, required, at most 100 characters.
	PhoneNumber string     // Exactly 10 digits.
	Email       string     // Optional contact email, at most 255 characters.
	Address     string     // Optional free-text postal address.
	CreatedAt   time.Time  // Timestamp of when this entry was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this entry.
}
