package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Camp struct {
	Id               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CampName         string             `json:"campName" bson:"campName"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	DateTime         string             `json:"dateTime,omitempty" bson:"dateTime,omitempty"`
	Location         string             `json:"location" bson:"location"`
	ProfessionalName string             `json:"professionalName" bson:"professionalName"`
	Price            float64            `json:"price" bson:"price"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	// Guests starts unset and is bumped by one on every join.
	Guests int64 `json:"guests,omitempty" bson:"guests,omitempty"`
}
