package handlers

import (
	"fmt"

	"campaid-backend/errors"
	"campaid-backend/middleware"
	"campaid-backend/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreatePaymentIntent asks the payment processor for a hosted intent
// over price*100 cents and hands back only the client secret.
func (h *Handler) CreatePaymentIntent(c *fiber.Ctx) error {
	body := new(struct {
		Price float64 `json:"price"`
	})
	if err := c.BodyParser(body); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable payment parameters: %v", err))
	}

	amount := int64(body.Price * 100)
	clientSecret, err := h.intents.CreateIntent(c.Context(), amount)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("payment processor error: %v", err))
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// CreatePayment appends the payment record, then flips the matching
// participant to "Paid" and returns that update's result. The two
// writes are independent: if the second fails the payment stays
// recorded, and an item reference matching no participant is a silent
// no-op rather than an error.
func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	newPayment := new(model.Payment)
	if err := c.BodyParser(newPayment); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable payment parameters: %v", err))
	}
	if newPayment.TransactionID == "" {
		newPayment.TransactionID = uuid.NewString()
	}

	if _, err := h.store.InsertPayment(c.Context(), newPayment); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	result, err := h.store.MarkParticipantPaid(c.Context(), newPayment.ItemIDs)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	logrus.WithFields(logrus.Fields{
		"email":    newPayment.Email,
		"item_ids": newPayment.ItemIDs,
		"matched":  result.MatchedCount,
	}).Info("payment recorded")

	return c.JSON(result)
}

func (h *Handler) GetPayments(c *fiber.Ctx) error {
	payments, err := h.store.ListPayments(c.Context())
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(payments)
}

// GetPaymentsByEmail lists the caller's own payment history.
func (h *Handler) GetPaymentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return errors.RaiseForbiddenError(c, "cannot query payments of another user")
	}

	payments, err := h.store.ListPaymentsByEmail(c.Context(), email)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(payments)
}
