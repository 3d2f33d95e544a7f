package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Relations a patient profile can have to the account owner
const (
	RelationSelf   = "self"
	RelationSpouse = "spouse"
	RelationChild  = "child"
	RelationParent = "parent"
)

// PatientProfile holds the structure for the patientprofiles collection in mongo.
// An account owner keeps one profile for themselves and one per dependent.
type PatientProfile struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	DateOfBirth string             `json:"dateOfBirth" bson:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Relation    string             `json:"relation" bson:"relation" validate:"oneof=self spouse child parent"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// NewPatientProfile builds a profile for the given owner, defaulting the
// relation to self when none is given.
func NewPatientProfile(userID primitive.ObjectID, name, dateOfBirth, relation string) *PatientProfile {
	p := &PatientProfile{
		UserID:      userID,
		Name:        name,
		DateOfBirth: dateOfBirth,
		Relation:    relation,
		CreatedAt:   primitive.NewDateTimeFromTime(time.Now()),
	}
	p.ApplyDefaults()
	return p
}

// ApplyDefaults fills the fields the schema defaults when they are left empty
func (p *PatientProfile) ApplyDefaults() {
	if p.Relation == "" {
		p.Relation = RelationSelf
	}
}

// PatientProfileResponse represents the API response structure
type PatientProfileResponse struct {
	Profiles   []PatientProfile `json:"profiles"`
	Pagination Pagination       `json:"pagination"`
}
