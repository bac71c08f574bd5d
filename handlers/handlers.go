package handlers

import (
	"context"

	"campaid-backend/model"
	"campaid-backend/payment"
	"campaid-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	InsertUser(ctx context.Context, user *model.User) (*mongo.InsertOneResult, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	PromoteUserToAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type CampStore interface {
	InsertCamp(ctx context.Context, camp *model.Camp) (*mongo.InsertOneResult, error)
	ListCamps(ctx context.Context) ([]model.Camp, error)
	FindCampByID(ctx context.Context, id primitive.ObjectID) (*model.Camp, error)
	UpdateCampInfo(ctx context.Context, id primitive.ObjectID, camp *model.Camp) (*mongo.UpdateResult, error)
	IncrementCampGuests(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	DeleteCamp(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type ParticipantStore interface {
	InsertParticipant(ctx context.Context, participant *model.Participant) (*mongo.InsertOneResult, error)
	ListParticipants(ctx context.Context) ([]model.Participant, error)
	FindParticipantByID(ctx context.Context, id primitive.ObjectID) (*model.Participant, error)
	ConfirmParticipant(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	MarkParticipantPaid(ctx context.Context, campRef string) (*mongo.UpdateResult, error)
	DeleteParticipant(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type PaymentStore interface {
	InsertPayment(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error)
}

type ReviewStore interface {
	InsertReview(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
}

// Store is what the route layer needs from the database; *database.DB
// implements all of it.
type Store interface {
	UserStore
	CampStore
	ParticipantStore
	PaymentStore
	ReviewStore
}

// Handler carries the process-scoped collaborators every route uses.
type Handler struct {
	store   Store
	tokens  *token.Service
	intents payment.IntentCreator
}

func New(store Store, tokens *token.Service, intents payment.IntentCreator) *Handler {
	return &Handler{store: store, tokens: tokens, intents: intents}
}

// Home is the liveness probe.
func (h *Handler) Home(c *fiber.Ctx) error {
	return c.SendString("CampAid is running")
}
