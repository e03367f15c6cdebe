package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin holds the structure for the admin collection in mongo. Admins are
// separate from users: they review applications and manage opportunities.
type Admin struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Roles     []string           `json:"roles" bson:"roles"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
