package handlers

import (
	"fmt"

	"campaid-backend/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// IssueToken mints a session token from the claims the client sends.
// Identity is established upstream, this endpoint only signs it.
func (h *Handler) IssueToken(c *fiber.Ctx) error {
	claims := jwt.MapClaims{}
	if err := c.BodyParser(&claims); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable token claims: %v", err))
	}

	signed, err := h.tokens.Issue(claims)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("token signing error: %v", err))
	}

	return c.JSON(fiber.Map{"token": signed})
}
