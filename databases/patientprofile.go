package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/models"
)

const patientProfileName = "patientprofiles"

// PatientProfileDatabase defines the interface for patient profile database operations
type PatientProfileDatabase interface {
	GetPatientProfilesByUserID(ctx context.Context, userID string, limit, page int64) (*models.PatientProfileResponse, error)
	GetPatientProfileByID(ctx context.Context, id string) (*models.PatientProfile, error)
	CreatePatientProfile(ctx context.Context, profile *models.PatientProfile) error
	UpdatePatientProfile(ctx context.Context, id string, profile *models.PatientProfile) error
	DeletePatientProfile(ctx context.Context, id string) error
	DeletePatientProfilesByUserID(ctx context.Context, userID string) (int64, error)
	CountPatientProfiles(ctx context.Context) (int64, error)
}

type patientProfileDatabase struct {
	collection CollectionHelper
}

// NewPatientProfileDatabase creates a new patient profile database instance
func NewPatientProfileDatabase(dbHelper DatabaseHelper) PatientProfileDatabase {
	return &patientProfileDatabase{
		collection: dbHelper.Collection(patientProfileName),
	}
}

// GetPatientProfilesByUserID retrieves the profiles an account owns, newest first
func (p *patientProfileDatabase) GetPatientProfilesByUserID(ctx context.Context, userID string, limit, page int64) (*models.PatientProfileResponse, error) {
	oid, err := objectID(userID)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"userId": oid}

	cursor, err := p.collection.Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts("createdAt"))
	if err != nil {
		return nil, err
	}
	profiles := []models.PatientProfile{}
	if err := decodeAll(ctx, cursor, &profiles); err != nil {
		return nil, err
	}

	totalCount, err := p.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.PatientProfileResponse{
		Profiles:   profiles,
		Pagination: models.NewPagination(page, limit, totalCount),
	}, nil
}

// GetPatientProfileByID retrieves a single profile by ID
func (p *patientProfileDatabase) GetPatientProfileByID(ctx context.Context, id string) (*models.PatientProfile, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var profile models.PatientProfile
	if err := p.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreatePatientProfile stores a new profile, applying the schema defaults
func (p *patientProfileDatabase) CreatePatientProfile(ctx context.Context, profile *models.PatientProfile) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	profile.ApplyDefaults()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}

	_, err := p.collection.InsertOne(ctx, profile)
	return err
}

// UpdatePatientProfile replaces the editable fields of a profile
func (p *patientProfileDatabase) UpdatePatientProfile(ctx context.Context, id string, profile *models.PatientProfile) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	profile.ApplyDefaults()
	profile.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	update := bson.M{
		"$set": bson.M{
			"name":        profile.Name,
			"dateOfBirth": profile.DateOfBirth,
			"relation":    profile.Relation,
			"updatedAt":   profile.UpdatedAt,
		},
	}
	res, err := p.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeletePatientProfile deletes a profile by ID
func (p *patientProfileDatabase) DeletePatientProfile(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := p.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeletePatientProfilesByUserID removes every profile an account owns
func (p *patientProfileDatabase) DeletePatientProfilesByUserID(ctx context.Context, userID string) (int64, error) {
	oid, err := objectID(userID)
	if err != nil {
		return 0, err
	}
	res, err := p.collection.DeleteMany(ctx, bson.M{"userId": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountPatientProfiles counts every stored profile
func (p *patientProfileDatabase) CountPatientProfiles(ctx context.Context) (int64, error) {
	return p.collection.CountDocuments(ctx, bson.M{})
}
