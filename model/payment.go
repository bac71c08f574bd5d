package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is append-only: records are inserted once and never updated.
// ItemIDs holds the camp id the payment covers and must equal the
// matching Participant.CampID for the paid-status update to apply.
type Payment struct {
	Id            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	Currency      string             `json:"currency,omitempty" bson:"currency,omitempty"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	ItemIDs       string             `json:"itemIds" bson:"itemIds"`
	CampName      string             `json:"campName,omitempty" bson:"campName,omitempty"`
	Date          string             `json:"date,omitempty" bson:"date,omitempty"`
}
