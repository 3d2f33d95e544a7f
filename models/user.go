package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user account can hold
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// User holds the structure for the users collection in mongo. A user is the
// account owner that patient profiles, records and appointments point at.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Password  string             `json:"-" bson:"password"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Role      string             `json:"role" bson:"role" validate:"required,oneof=admin doctor patient"`
	Specialty string             `json:"specialty,omitempty" bson:"specialty,omitempty"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// CreateUserRequest is the body accepted when registering a user
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=admin doctor patient"`
	Specialty string `json:"specialty"`
}
