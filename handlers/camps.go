package handlers

import (
	"fmt"

	"campaid-backend/errors"
	"campaid-backend/model"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) CreateCamp(c *fiber.Ctx) error {
	newCamp := new(model.Camp)
	if err := c.BodyParser(newCamp); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable camp parameters: %v", err))
	}

	result, err := h.store.InsertCamp(c.Context(), newCamp)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

func (h *Handler) GetCamps(c *fiber.Ctx) error {
	camps, err := h.store.ListCamps(c.Context())
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(camps)
}

func (h *Handler) GetCamp(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid camp id %v", c.Params("id")))
	}
	logrus.WithFields(logrus.Fields{"camp_id": id.Hex()}).Debug("fetching camp details")

	camp, err := h.store.FindCampByID(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if camp == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("camp %v not found", id.Hex()))
	}

	return c.JSON(camp)
}

func (h *Handler) DeleteCamp(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid camp id %v", c.Params("id")))
	}

	result, err := h.store.DeleteCamp(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

// UpdateCamp replaces the editable camp fields from the request body.
func (h *Handler) UpdateCamp(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid camp id %v", c.Params("id")))
	}

	updatedCamp := new(model.Camp)
	if err := c.BodyParser(updatedCamp); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable camp parameters: %v", err))
	}

	result, err := h.store.UpdateCampInfo(c.Context(), id, updatedCamp)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

// JoinCamp bumps the camp's guest count by one.
func (h *Handler) JoinCamp(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid camp id %v", c.Params("id")))
	}

	result, err := h.store.IncrementCampGuests(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if result.ModifiedCount == 0 {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("camp %v not found", id.Hex()))
	}

	return c.JSON(fiber.Map{"message": "Camp updated successfully"})
}
