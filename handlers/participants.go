package handlers

import (
	"fmt"

	"campaid-backend/errors"
	"campaid-backend/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateParticipant registers interest in a camp. Records are inserted
// as-is, so the same camp+email pair can register more than once.
func (h *Handler) CreateParticipant(c *fiber.Ctx) error {
	newParticipant := new(model.Participant)
	if err := c.BodyParser(newParticipant); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable participant parameters: %v", err))
	}

	result, err := h.store.InsertParticipant(c.Context(), newParticipant)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

func (h *Handler) GetParticipants(c *fiber.Ctx) error {
	participants, err := h.store.ListParticipants(c.Context())
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(participants)
}

// GetParticipant returns the document or a null body when none matches.
func (h *Handler) GetParticipant(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid participant id %v", c.Params("id")))
	}

	participant, err := h.store.FindParticipantByID(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(participant)
}

// ConfirmParticipant marks the registration "Confirmed". This route is
// deliberately left open to any caller, matching the observed behavior
// of the system it replaces; see DESIGN.md.
func (h *Handler) ConfirmParticipant(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid participant id %v", c.Params("id")))
	}

	result, err := h.store.ConfirmParticipant(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

func (h *Handler) DeleteParticipant(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid participant id %v", c.Params("id")))
	}

	result, err := h.store.DeleteParticipant(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}
