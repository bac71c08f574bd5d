package middleware

import (
	"context"

	"campaid-backend/errors"
	"campaid-backend/model"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

// UserFinder is the role lookup the admin gate needs; *database.DB
// satisfies it.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authenticate rejects requests without a valid bearer token and stores
// the parsed token under the "identity" context key.
func Authenticate(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		ContextKey:   "identity",
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	logrus.WithFields(logrus.Fields{
		"path":       c.Path(),
		"has_header": c.Get(fiber.HeaderAuthorization) != "",
	}).Info("token verification failed: ", err)
	return errors.RaiseUnauthorizedError(c, "missing or invalid token")
}

// RequireAdmin must run after Authenticate. It looks the caller up by
// the email in the token claims and rejects anyone without admin role.
func RequireAdmin(users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := TokenClaims(c)
		email := TokenEmail(c)
		logrus.WithFields(logrus.Fields{"claims": map[string]interface{}(claims)}).
			Debug("verifying admin role")

		user, err := users.FindUserByEmail(c.Context(), email)
		if err != nil {
			return errors.RaiseInternalServerError(c, "failed to look up user role")
		}
		if !user.IsAdmin() {
			return errors.RaiseForbiddenError(c, "only admin can perform this operation")
		}

		return c.Next()
	}
}

// TokenClaims returns the claims attached by Authenticate, or nil when
// the route is not authenticated.
func TokenClaims(c *fiber.Ctx) jwt.MapClaims {
	tok, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

func TokenEmail(c *fiber.Ctx) string {
	email, _ := TokenClaims(c)["email"].(string)
	return email
}
