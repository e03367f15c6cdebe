package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User holds the structure for the user collection in mongo
type User struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details UserDetails        `json:"user" bson:"user"`
	Version int32              `json:"__v" bson:"__v"`
}

// UserDetails holds the structure for the inner user structure as defined in
// the user collection in mongo
type UserDetails struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"`
	PhotoURL string `json:"photoURL" bson:"photoURL"`

	// TotalVolunteerHours is denormalized; the scheduler recomputes it
	// nightly from the volunteering records.
	TotalVolunteerHours float64 `json:"totalVolunteerHours" bson:"totalVolunteerHours"`

	IsAdmin   bool               `json:"isAdmin" bson:"isAdmin"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
