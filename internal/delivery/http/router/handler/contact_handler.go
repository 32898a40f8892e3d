// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/response"
	"addressbook/internal/domain/entity"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for address-book handlers.
type ContactHandler struct {
	uc     usecase.AddressBookUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.AddressBookUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// contactResponse is the API shape of a contact, distinct from the entity.
type contactResponse struct {
	ID          int64  `json:"id"`
	UserID      string `json:"userId,omitempty"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

// toContactResponse is an explicit, hand-written conversion so field
// coverage stays auditable in review and tests.
func toContactResponse(contact *entity.Contact) contactResponse {
	resp := contactResponse{
		ID:          contact.ID,
		Name:        contact.Name,
		PhoneNumber: contact.PhoneNumber,
		Email:       contact.Email,
		Address:     contact.Address,
	}
	if contact.OwnerID != nil {
		resp.UserID = contact.OwnerID.String()
	}

	return resp
}

func toContactResponses(contacts []*entity.Contact) []contactResponse {
	out := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactResponse(contact))
	}

	return out
}

// GetAll handles listing every contact.
func (h *ContactHandler) GetAll(c echo.Context) error {
	contacts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponses(contacts), "Contacts fetched successfully.")
}

// GetByID handles fetching a single contact.
func (h *ContactHandler) GetByID(c echo.Context) error {
	id, err := parseContactID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid contact id.")
	}

	contact, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact), "Contact fetched successfully.")
}

// Add handles creating a contact. When the request carries a valid bearer
// token, the created entry records the caller as owner.
func (h *ContactHandler) Add(c echo.Context) error {
	var input *usecase.ContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input.")
	}

	contact, err := h.uc.Add(c.Request().Context(), input, callerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/addressbook/%d", contact.ID))

	return response.Success(c, http.StatusCreated, toContactResponse(contact), "Contact added successfully.")
}

// Update handles replacing all mutable fields of a contact.
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := parseContactID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid contact id.")
	}

	var input *usecase.ContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input.")
	}

	contact, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact), "Contact updated successfully.")
}

// Delete handles removing a contact permanently.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseContactID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid contact id.")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func parseContactID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// callerID returns the authenticated user's id when the optional auth
// middleware recorded one, nil otherwise.
func callerID(c echo.Context) *uuid.UUID {
	userIDVal := c.Get(middleware.ContextKeyUserID)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}

	return &userID
}
