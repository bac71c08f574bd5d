package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"campaid-backend/handlers"
	"campaid-backend/model"
	"campaid-backend/router"
	"campaid-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const testSecret = "test-signing-secret"

// fakeStore is an in-memory stand-in for database.DB implementing
// handlers.Store and middleware.UserFinder.
type fakeStore struct {
	mu           sync.Mutex
	users        []*model.User
	camps        map[primitive.ObjectID]*model.Camp
	participants map[primitive.ObjectID]*model.Participant
	payments     []*model.Payment
	reviews      []*model.Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		camps:        map[primitive.ObjectID]*model.Camp{},
		participants: map[primitive.ObjectID]*model.Participant{},
	}
}

func (s *fakeStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) InsertUser(_ context.Context, user *model.User) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	s.users = append(s.users, user)
	return &mongo.InsertOneResult{InsertedID: user.Id}, nil
}

func (s *fakeStore) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.User{}
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeStore) PromoteUserToAdmin(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Id == id {
			u.Role = "admin"
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (s *fakeStore) DeleteUser(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.Id == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (s *fakeStore) InsertCamp(_ context.Context, camp *model.Camp) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if camp.Id.IsZero() {
		camp.Id = primitive.NewObjectID()
	}
	s.camps[camp.Id] = camp
	return &mongo.InsertOneResult{InsertedID: camp.Id}, nil
}

func (s *fakeStore) ListCamps(_ context.Context) ([]model.Camp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Camp{}
	for _, c := range s.camps {
		out = append(out, *c)
	}
	return out, nil
}

func (s *fakeStore) FindCampByID(_ context.Context, id primitive.ObjectID) (*model.Camp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camps[id], nil
}

func (s *fakeStore) UpdateCampInfo(_ context.Context, id primitive.ObjectID, camp *model.Camp) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.camps[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	existing.CampName = camp.CampName
	existing.Location = camp.Location
	existing.ProfessionalName = camp.ProfessionalName
	existing.Price = camp.Price
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *fakeStore) IncrementCampGuests(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	camp, ok := s.camps[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	camp.Guests++
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *fakeStore) DeleteCamp(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.camps[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(s.camps, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (s *fakeStore) InsertParticipant(_ context.Context, participant *model.Participant) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if participant.Id.IsZero() {
		participant.Id = primitive.NewObjectID()
	}
	s.participants[participant.Id] = participant
	return &mongo.InsertOneResult{InsertedID: participant.Id}, nil
}

func (s *fakeStore) ListParticipants(_ context.Context) ([]model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Participant{}
	for _, p := range s.participants {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeStore) FindParticipantByID(_ context.Context, id primitive.ObjectID) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.participants[id], nil
}

func (s *fakeStore) ConfirmParticipant(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	participant, ok := s.participants[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	participant.Confirm = "Confirmed"
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// MarkParticipantPaid mirrors the single-document UpdateOne semantics.
func (s *fakeStore) MarkParticipantPaid(_ context.Context, campRef string) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.participants {
		if p.CampID == campRef {
			p.Status = "Paid"
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (s *fakeStore) DeleteParticipant(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(s.participants, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (s *fakeStore) InsertPayment(_ context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.Id.IsZero() {
		payment.Id = primitive.NewObjectID()
	}
	s.payments = append(s.payments, payment)
	return &mongo.InsertOneResult{InsertedID: payment.Id}, nil
}

func (s *fakeStore) ListPayments(_ context.Context) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Payment{}
	for _, p := range s.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeStore) ListPaymentsByEmail(_ context.Context, email string) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Payment{}
	for _, p := range s.payments {
		if p.Email == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeStore) InsertReview(_ context.Context, review *model.Review) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if review.Id.IsZero() {
		review.Id = primitive.NewObjectID()
	}
	s.reviews = append(s.reviews, review)
	return &mongo.InsertOneResult{InsertedID: review.Id}, nil
}

func (s *fakeStore) ListReviews(_ context.Context) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Review{}
	for _, r := range s.reviews {
		out = append(out, *r)
	}
	return out, nil
}

// fakeIntents records the requested amount and hands back a canned
// client secret.
type fakeIntents struct {
	gotAmount int64
}

func (f *fakeIntents) CreateIntent(_ context.Context, amountCents int64) (string, error) {
	f.gotAmount = amountCents
	return fmt.Sprintf("pi_test_secret_%d", amountCents), nil
}

func newTestApp(store *fakeStore, intents *fakeIntents) *fiber.App {
	h := handlers.New(store, token.NewService(testSecret, token.DefaultTTL), intents)
	app := fiber.New()
	router.SetupRoutes(app, h, testSecret, store)
	return app
}

func seedUser(store *fakeStore, email, role string) *model.User {
	user := &model.User{Id: primitive.NewObjectID(), Email: email, Role: role}
	store.users = append(store.users, user)
	return user
}

func seedCamp(store *fakeStore, name string, price float64) *model.Camp {
	camp := &model.Camp{Id: primitive.NewObjectID(), CampName: name, Price: price}
	store.camps[camp.Id] = camp
	return camp
}

func seedParticipant(store *fakeStore, campRef, email string) *model.Participant {
	participant := &model.Participant{Id: primitive.NewObjectID(), CampID: campRef, Email: email}
	store.participants[participant.Id] = participant
	return participant
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	signed, err := token.NewService(testSecret, token.DefaultTTL).Issue(jwt.MapClaims{"email": email})
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(t *testing.T, app *fiber.App, method, url, body, authHeader string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func decodeBodyList(t *testing.T, res *http.Response) []map[string]interface{} {
	t.Helper()
	body := []map[string]interface{}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}
