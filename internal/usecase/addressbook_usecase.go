// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"addressbook/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ContactInput defines the data accepted for creating or updating a contact.
// The shape exchanged over the API boundary is distinct from the persisted entity.
type ContactInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	Address     string `json:"address"`
}

// AddressBookUsecase defines the interface for address-book business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AddressBookUsecase interface {
	// List returns every contact in storage order.
	List(ctx context.Context) ([]*entity.Contact, error)

	// Get returns the contact with the given id, or a not-found domain error.
	Get(ctx context.Context, id int64) (*entity.Contact, error)

	// Add validates the input and persists a new contact. A non-nil ownerID
	// records the authenticated caller on the entry.
	Add(ctx context.Context, input *ContactInput, ownerID *uuid.UUID) (*entity.Contact, error)

	// Update validates the input and overwrites all mutable fields of an existing contact.
	Update(ctx context.Context, id int64, input *ContactInput) (*entity.Contact, error)

	// Delete permanently removes a contact.
	Delete(ctx context.Context, id int64) error
}
