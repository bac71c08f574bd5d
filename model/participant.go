package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Participant records a user's interest in a camp. CampID carries the
// hex id of the camp as sent by the client and is the key the payment
// flow matches on. Status moves to "Paid" after a matching payment;
// Confirm moves to "Confirmed" by an organizer action.
type Participant struct {
	Id              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CampID          string             `json:"camp_id" bson:"camp_id"`
	CampName        string             `json:"campName,omitempty" bson:"campName,omitempty"`
	ParticipantName string             `json:"participantName,omitempty" bson:"participantName,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Fees            float64            `json:"fees,omitempty" bson:"fees,omitempty"`
	Status          string             `json:"status,omitempty" bson:"status,omitempty"`
	Confirm         string             `json:"confirm,omitempty" bson:"confirm,omitempty"`
}
