package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/models"
)

const recordName = "records"

// RecordDatabase defines the interface for patient record database operations
type RecordDatabase interface {
	GetRecordsByPatientID(ctx context.Context, patientID string, limit, page int64) (*models.RecordResponse, error)
	GetRecordByID(ctx context.Context, id string) (*models.Record, error)
	CreateRecord(ctx context.Context, record *models.Record) error
	DeleteRecord(ctx context.Context, id string) error
	DeleteRecordsByPatientID(ctx context.Context, patientID string) (int64, error)
}

type recordDatabase struct {
	collection CollectionHelper
}

// NewRecordDatabase creates a new record database instance
func NewRecordDatabase(dbHelper DatabaseHelper) RecordDatabase {
	return &recordDatabase{
		collection: dbHelper.Collection(recordName),
	}
}

// GetRecordsByPatientID retrieves a patient's records, latest upload first
func (r *recordDatabase) GetRecordsByPatientID(ctx context.Context, patientID string, limit, page int64) (*models.RecordResponse, error) {
	oid, err := objectID(patientID)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"patientId": oid}

	cursor, err := r.collection.Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts("uploadedAt"))
	if err != nil {
		return nil, err
	}
	records := []models.Record{}
	if err := decodeAll(ctx, cursor, &records); err != nil {
		return nil, err
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.RecordResponse{
		Records:    records,
		Pagination: models.NewPagination(page, limit, totalCount),
	}, nil
}

func (r *recordDatabase) GetRecordByID(ctx context.Context, id string) (*models.Record, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var record models.Record
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordDatabase) CreateRecord(ctx context.Context, record *models.Record) error {
	record.ApplyDefaults()
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *recordDatabase) DeleteRecord(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *recordDatabase) DeleteRecordsByPatientID(ctx context.Context, patientID string) (int64, error) {
	oid, err := objectID(patientID)
	if err != nil {
		return 0, err
	}
	res, err := r.collection.DeleteMany(ctx, bson.M{"patientId": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
