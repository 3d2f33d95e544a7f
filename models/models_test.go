package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewPatientProfileDefaultsRelationToSelf(t *testing.T) {
	owner := primitive.NewObjectID()
	p := NewPatientProfile(owner, "Jane Doe", "1990-01-01", "")

	assert.Equal(t, RelationSelf, p.Relation)
	assert.Equal(t, owner, p.UserID)
	assert.NoError(t, Validate(p))
}

func TestNewPatientProfileKeepsRelation(t *testing.T) {
	p := NewPatientProfile(primitive.NewObjectID(), "Tim Doe", "2015-06-30", RelationChild)

	assert.Equal(t, RelationChild, p.Relation)
}

func TestPatientProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		profile PatientProfile
		wantErr bool
	}{
		{
			name:    "missing owner",
			profile: PatientProfile{Name: "Jane", Relation: RelationSelf},
			wantErr: true,
		},
		{
			name:    "unknown relation",
			profile: PatientProfile{UserID: primitive.NewObjectID(), Name: "Jane", Relation: "cousin"},
			wantErr: true,
		},
		{
			name:    "bad date of birth",
			profile: PatientProfile{UserID: primitive.NewObjectID(), Name: "Jane", Relation: RelationSelf, DateOfBirth: "01/02/1990"},
			wantErr: true,
		},
		{
			name:    "valid",
			profile: PatientProfile{UserID: primitive.NewObjectID(), Name: "Jane", Relation: RelationSpouse},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPrescriptionWithoutMedicinesStoresEmptyList(t *testing.T) {
	p := NewPrescription(primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), nil)

	require.NotNil(t, p.Medicines)
	assert.Empty(t, p.Medicines)
	assert.NotZero(t, p.CreatedAt)

	raw, err := bson.Marshal(p)
	require.NoError(t, err)
	var decoded bson.M
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.IsType(t, bson.A{}, decoded["medicines"])
	assert.Len(t, decoded["medicines"], 0)
}

func TestNewPrescriptionKeepsMedicinesInOrder(t *testing.T) {
	meds := []Medicine{
		{Name: "Amoxicillin", Dosage: "500mg", Duration: "7 days"},
		{Name: "Paracetamol", Dosage: "1g", Duration: "3 days"},
	}
	p := NewPrescription(primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), meds)
	meds[0].Name = "changed"

	assert.Equal(t, []Medicine{
		{Name: "Amoxicillin", Dosage: "500mg", Duration: "7 days"},
		{Name: "Paracetamol", Dosage: "1g", Duration: "3 days"},
	}, p.Medicines)
}

func TestPrescriptionValidationRequiresReferences(t *testing.T) {
	p := NewPrescription(primitive.NilObjectID, primitive.NewObjectID(), primitive.NewObjectID(), nil)
	assert.Error(t, Validate(p))

	p = NewPrescription(primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), []Medicine{{Dosage: "1g"}})
	assert.Error(t, Validate(p), "medicine entries need a name")
}

func TestNewRecordWithoutDescription(t *testing.T) {
	before := time.Now().Add(-time.Second)
	r := NewRecord(primitive.NewObjectID(), "https://res.cloudinary.com/demo/raw/upload/scan.pdf", "")

	assert.Empty(t, r.Description)
	assert.Equal(t, "https://res.cloudinary.com/demo/raw/upload/scan.pdf", r.FileURL)
	assert.True(t, r.UploadedAt.Time().After(before))

	raw, err := bson.Marshal(r)
	require.NoError(t, err)
	var decoded bson.M
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	_, ok := decoded["description"]
	assert.False(t, ok)
	assert.NoError(t, Validate(r))
}

func TestRecordValidationRequiresFileURL(t *testing.T) {
	r := NewRecord(primitive.NewObjectID(), "", "x-ray")
	assert.Error(t, Validate(r))

	for _, fileURL := range []string{"not a url", "ftp://files.example.com/scan.pdf", "https://"} {
		r = NewRecord(primitive.NewObjectID(), fileURL, "x-ray")
		assert.Error(t, Validate(r), fileURL)
	}

	r = NewRecord(primitive.NewObjectID(), "http://files.example.com/scan.pdf", "x-ray")
	assert.NoError(t, Validate(r))
}

func TestAppointmentDefaultsToPending(t *testing.T) {
	a := Appointment{}
	a.ApplyDefaults()

	assert.Equal(t, StatusPending, a.Status)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{CurrentPage: 1, TotalPages: 3, TotalRecords: 21, Limit: 10}, NewPagination(1, 10, 21))
	assert.Equal(t, Pagination{CurrentPage: 0, TotalPages: 0, TotalRecords: 0, Limit: 10}, NewPagination(0, 10, 0))
}
