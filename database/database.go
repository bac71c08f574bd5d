package database

import (
	"context"
	"errors"
	"fmt"

	"campaid-backend/config"
	"campaid-backend/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the Mongo client and the five collections the service uses.
// It is created once at startup and handed to every consumer.
type DB struct {
	client       *mongo.Client
	users        *mongo.Collection
	camps        *mongo.Collection
	participants *mongo.Collection
	payments     *mongo.Collection
	reviews      *mongo.Collection
}

func New(ctx context.Context, cfg *config.Config) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	db := client.Database(cfg.DatabaseName)
	return &DB{
		client:       client,
		users:        db.Collection("users"),
		camps:        db.Collection("camps"),
		participants: db.Collection("participant"),
		payments:     db.Collection("payments"),
		reviews:      db.Collection("reviews"),
	}, nil
}

func (db *DB) Disconnect(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// decodeAll drains a cursor into a slice, always returning a non-nil
// slice so empty collections serialize as [] rather than null.
func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Users

// FindUserByEmail returns nil without error when no user matches.
func (db *DB) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := db.users.FindOne(ctx, bson.D{primitive.E{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) InsertUser(ctx context.Context, user *model.User) (*mongo.InsertOneResult, error) {
	return db.users.InsertOne(ctx, user)
}

func (db *DB) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := db.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[model.User](ctx, cur)
}

func (db *DB) PromoteUserToAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return db.users.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: id}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{primitive.E{Key: "role", Value: "admin"}}}})
}

func (db *DB) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return db.users.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}})
}

// Camps

func (db *DB) InsertCamp(ctx context.Context, camp *model.Camp) (*mongo.InsertOneResult, error) {
	return db.camps.InsertOne(ctx, camp)
}

func (db *DB) ListCamps(ctx context.Context) ([]model.Camp, error) {
	cur, err := db.camps.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Camp](ctx, cur)
}

// FindCampByID returns nil without error when no camp matches.
func (db *DB) FindCampByID(ctx context.Context, id primitive.ObjectID) (*model.Camp, error) {
	var camp model.Camp
	err := db.camps.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}).Decode(&camp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// UpdateCampInfo replaces the editable camp fields, leaving guests and
// any other fields untouched.
func (db *DB) UpdateCampInfo(ctx context.Context, id primitive.ObjectID, camp *model.Camp) (*mongo.UpdateResult, error) {
	return db.camps.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: id}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "campName", Value: camp.CampName},
			primitive.E{Key: "location", Value: camp.Location},
			primitive.E{Key: "professionalName", Value: camp.ProfessionalName},
			primitive.E{Key: "price", Value: camp.Price},
		}}})
}

func (db *DB) IncrementCampGuests(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return db.camps.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: id}},
		bson.D{primitive.E{Key: "$inc", Value: bson.D{primitive.E{Key: "guests", Value: 1}}}})
}

func (db *DB) DeleteCamp(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return db.camps.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}})
}

// Participants

func (db *DB) InsertParticipant(ctx context.Context, participant *model.Participant) (*mongo.InsertOneResult, error) {
	return db.participants.InsertOne(ctx, participant)
}

func (db *DB) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	cur, err := db.participants.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Participant](ctx, cur)
}

// FindParticipantByID returns nil without error when no participant matches.
func (db *DB) FindParticipantByID(ctx context.Context, id primitive.ObjectID) (*model.Participant, error) {
	var participant model.Participant
	err := db.participants.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}).Decode(&participant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (db *DB) ConfirmParticipant(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return db.participants.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: id}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{primitive.E{Key: "confirm", Value: "Confirmed"}}}})
}

// MarkParticipantPaid flips the payment status of the participant whose
// camp reference equals the paid item. A reference that matches nothing
// yields a zero-count result, not an error.
func (db *DB) MarkParticipantPaid(ctx context.Context, campRef string) (*mongo.UpdateResult, error) {
	return db.participants.UpdateOne(ctx,
		bson.D{primitive.E{Key: "camp_id", Value: campRef}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{primitive.E{Key: "status", Value: "Paid"}}}})
}

func (db *DB) DeleteParticipant(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return db.participants.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}})
}

// Payments

func (db *DB) InsertPayment(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	return db.payments.InsertOne(ctx, payment)
}

func (db *DB) ListPayments(ctx context.Context) ([]model.Payment, error) {
	cur, err := db.payments.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Payment](ctx, cur)
}

func (db *DB) ListPaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	cur, err := db.payments.Find(ctx, bson.D{primitive.E{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Payment](ctx, cur)
}

// Reviews

func (db *DB) InsertReview(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error) {
	return db.reviews.InsertOne(ctx, review)
}

func (db *DB) ListReviews(ctx context.Context) ([]model.Review, error) {
	cur, err := db.reviews.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Review](ctx, cur)
}
