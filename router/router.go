package router

import (
	"campaid-backend/handlers"
	"campaid-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// SetupRoutes wires every endpoint. verifyToken gates authenticated
// routes; verifyAdmin always runs behind verifyToken.
func SetupRoutes(app *fiber.App, h *handlers.Handler, tokenSecret string, users middleware.UserFinder) {
	verifyToken := middleware.Authenticate(tokenSecret)
	verifyAdmin := middleware.RequireAdmin(users)

	api := app.Group("/", logger.New())
	api.Get("/", h.Home)

	// Token
	api.Post("/jwt", h.IssueToken)

	// Users
	api.Post("/users", h.CreateUser)
	api.Get("/users", verifyToken, verifyAdmin, h.GetUsers)
	api.Get("/users/admin/:email", verifyToken, h.GetAdminStatus)
	api.Patch("/users/admin/:id", verifyToken, verifyAdmin, h.PromoteUser)
	api.Delete("/users/:id", verifyToken, verifyAdmin, h.DeleteUser)

	// Camps
	api.Post("/camps", verifyToken, verifyAdmin, h.CreateCamp)
	api.Get("/camps", h.GetCamps)
	api.Get("/camps/:id", h.GetCamp)
	api.Patch("/camps/:id", h.UpdateCamp)
	api.Put("/camps/:id", h.JoinCamp)
	api.Delete("/camps/:id", verifyToken, verifyAdmin, h.DeleteCamp)

	// Participants
	api.Post("/participant", verifyToken, h.CreateParticipant)
	api.Get("/participant", h.GetParticipants)
	api.Get("/participant/:id", h.GetParticipant)
	// confirmation intentionally carries no auth, see DESIGN.md
	api.Patch("/participant/:id", h.ConfirmParticipant)
	api.Delete("/participant/:id", h.DeleteParticipant)

	// Payments
	api.Post("/create-payment-intent", h.CreatePaymentIntent)
	api.Post("/payments", h.CreatePayment)
	api.Get("/payments", h.GetPayments)
	api.Get("/payments/:email", verifyToken, h.GetPaymentsByEmail)

	// Reviews
	api.Post("/reviews", h.CreateReview)
	api.Get("/reviews", h.GetReviews)
}
