package handlers

import (
	"fmt"

	"campaid-backend/errors"
	"campaid-backend/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateReview(c *fiber.Ctx) error {
	newReview := new(model.Review)
	if err := c.BodyParser(newReview); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable review parameters: %v", err))
	}

	result, err := h.store.InsertReview(c.Context(), newReview)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

func (h *Handler) GetReviews(c *fiber.Ctx) error {
	reviews, err := h.store.ListReviews(c.Context())
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(reviews)
}
