// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"addressbook/internal/domain/entity"
)

// ErrContactNotFound is a domain-specific error returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the standard operations for address-book persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ContactRepository interface {
	// FindAll retrieves every contact in storage order (ascending id).
	FindAll(ctx context.Context) ([]*entity.Contact, error)

	// FindByID retrieves a single contact by its surrogate id.
	FindByID(ctx context.Context, id int64) (*entity.Contact, error)

	// Create persists a new contact and fills in the generated id and timestamps.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update overwrites all mutable fields of an existing contact.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete permanently removes a contact. Returns ErrContactNotFound if the id is absent.
	Delete(ctx context.Context, id int64) error
}
