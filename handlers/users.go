package handlers

import (
	"fmt"

	"campaid-backend/errors"
	"campaid-backend/middleware"
	"campaid-backend/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateUser inserts the user unless one with the same email already
// exists. The duplicate case is reported in the body, not as an error.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	newUser := new(model.User)
	if err := c.BodyParser(newUser); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable user parameters: %v", err))
	}

	existing, err := h.store.FindUserByEmail(c.Context(), newUser.Email)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}
	if existing != nil {
		return c.JSON(fiber.Map{"message": "user already exists", "insertedId": nil})
	}

	result, err := h.store.InsertUser(c.Context(), newUser)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

// GetAdminStatus reports whether the given email belongs to an admin.
// Callers may only ask about themselves.
func (h *Handler) GetAdminStatus(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.TokenEmail(c) {
		return errors.RaiseForbiddenError(c, "cannot query admin status of another user")
	}

	user, err := h.store.FindUserByEmail(c.Context(), email)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(fiber.Map{"admin": user.IsAdmin()})
}

func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.store.ListUsers(c.Context())
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(users)
}

// PromoteUser sets the user's role to admin. There is no demotion path.
func (h *Handler) PromoteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid user id %v", c.Params("id")))
	}

	result, err := h.store.PromoteUserToAdmin(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}

func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid user id %v", c.Params("id")))
	}

	result, err := h.store.DeleteUser(c.Context(), id)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(result)
}
