// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressBookService implements the AddressBookUsecase interface.
type addressBookService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewAddressBookService is the constructor for addressBookService.
// It receives all dependencies as interfaces.
func NewAddressBookService(
	contactRepo repository.ContactRepository,
	logger *slog.Logger,
) usecase.AddressBookUsecase {
	return &addressBookService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// List returns every contact in storage order.
func (srv *addressBookService) List(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.FindAll(ctx)
	if err != nil {
		srv.logger.Error("Failed to fetch contacts", "error", err)

		return nil, errors.Wrap(err, "failed to fetch contacts")
	}

	return contacts, nil
}

// Get returns a single contact by id.
func (srv *addressBookService) Get(ctx context.Context, id int64) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}
		srv.logger.Error("Failed to fetch contact", "error", err, "contactID", id)

		return nil, errors.Wrap(err, "failed to fetch contact")
	}

	return contact, nil
}

// Add validates the request and persists a new contact.
// The storage layer assigns the id, so concurrent adds never collide.
func (srv *addressBookService) Add(ctx context.Context, input *usecase.ContactInput, ownerID *uuid.UUID) (*entity.Contact, error) {
	if violations := input.Validate(); len(violations) > 0 {
		return nil, domainerrors.ErrContactValidation.WithDetails(strings.Join(violations, "; "))
	}

	contact := &entity.Contact{
		OwnerID:     ownerID,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Address:     input.Address,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		srv.logger.Error("Failed to create contact", "error", err)

		return nil, errors.Wrap(err, "failed to create contact")
	}
	srv.logger.Debug("Contact created", "contactID", contact.ID)

	return contact, nil
}

// Update validates the request and overwrites all mutable fields of an
// existing contact. An absent id mutates nothing.
func (srv *addressBookService) Update(ctx context.Context, id int64, input *usecase.ContactInput) (*entity.Contact, error) {
	if violations := input.Validate(); len(violations) > 0 {
		return nil, domainerrors.ErrContactValidation.WithDetails(strings.Join(violations, "; "))
	}

	existing, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			srv.logger.Warn("Update failed, contact not found", "contactID", id)

			return nil, domainerrors.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch contact for update")
	}

	existing.Name = input.Name
	existing.PhoneNumber = input.PhoneNumber
	existing.Email = input.Email
	existing.Address = input.Address

	if err := srv.contactRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			// Deleted between the lookup and the write; same outcome for the caller.
			return nil, domainerrors.ErrContactNotFound
		}
		srv.logger.Error("Failed to update contact", "error", err, "contactID", id)

		return nil, errors.Wrap(err, "failed to update contact")
	}
	srv.logger.Info("Contact updated", "contactID", id)

	return existing, nil
}

// Delete permanently removes a contact.
func (srv *addressBookService) Delete(ctx context.Context, id int64) error {
	if err := srv.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			srv.logger.Warn("Delete failed, contact not found", "contactID", id)

			return domainerrors.ErrContactNotFound
		}
		srv.logger.Error("Failed to delete contact", "error", err, "contactID", id)

		return errors.Wrap(err, "failed to delete contact")
	}
	srv.logger.Info("Contact deleted", "contactID", id)

	return nil
}
