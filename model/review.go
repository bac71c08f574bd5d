package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	Id       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CampID   string             `json:"camp_id,omitempty" bson:"camp_id,omitempty"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Rating   int                `json:"rating,omitempty" bson:"rating,omitempty"`
	Feedback string             `json:"feedback" bson:"feedback"`
}
