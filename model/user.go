package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is created on first registration. Role is empty for regular
// users and "admin" after an explicit promotion; it is never demoted.
type User struct {
	Id       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Email    string             `json:"email" bson:"email"`
	PhotoURL string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role     string             `json:"role,omitempty" bson:"role,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
