package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/hospital-api/models"
)

const prescriptionName = "prescriptions"

// PrescriptionFilter narrows a prescription listing. Empty fields are ignored.
type PrescriptionFilter struct {
	PatientID     string
	AppointmentID string
}

// PrescriptionDatabase defines the interface for prescription database operations
type PrescriptionDatabase interface {
	GetPrescriptionByID(ctx context.Context, id string) (*models.Prescription, error)
	GetPrescriptions(ctx context.Context, filter PrescriptionFilter) ([]models.Prescription, error)
	CreatePrescription(ctx context.Context, prescription *models.Prescription) error
}

type prescriptionDatabase struct {
	collection CollectionHelper
}

// NewPrescriptionDatabase creates a new prescription database instance
func NewPrescriptionDatabase(dbHelper DatabaseHelper) PrescriptionDatabase {
	return &prescriptionDatabase{
		collection: dbHelper.Collection(prescriptionName),
	}
}

func (p *prescriptionDatabase) GetPrescriptionByID(ctx context.Context, id string) (*models.Prescription, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var prescription models.Prescription
	if err := p.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (p *prescriptionDatabase) GetPrescriptions(ctx context.Context, filter PrescriptionFilter) ([]models.Prescription, error) {
	query := bson.M{}
	if filter.PatientID != "" {
		oid, err := objectID(filter.PatientID)
		if err != nil {
			return nil, err
		}
		query["patientId"] = oid
	}
	if filter.AppointmentID != "" {
		oid, err := objectID(filter.AppointmentID)
		if err != nil {
			return nil, err
		}
		query["appointmentId"] = oid
	}

	cursor, err := p.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	prescriptions := []models.Prescription{}
	if err := decodeAll(ctx, cursor, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// CreatePrescription stores a prescription, defaulting an absent medicine list
// to an empty one and stamping createdAt.
func (p *prescriptionDatabase) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	prescription.ApplyDefaults()
	if prescription.ID.IsZero() {
		prescription.ID = primitive.NewObjectID()
	}
	_, err := p.collection.InsertOne(ctx, prescription)
	return err
}
