package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/hospital-api/models"
)

const appointmentName = "appointments"

// AppointmentDatabase defines the interface for appointment database operations
type AppointmentDatabase interface {
	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAppointmentsBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error)
}

type appointmentDatabase struct {
	collection CollectionHelper
}

// NewAppointmentDatabase creates a new appointment database instance
func NewAppointmentDatabase(dbHelper DatabaseHelper) AppointmentDatabase {
	return &appointmentDatabase{
		collection: dbHelper.Collection(appointmentName),
	}
}

func (a *appointmentDatabase) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var appointment models.Appointment
	if err := a.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// GetAppointmentsBetween lists appointments scheduled in [from, to), latest
// first. A zero bound leaves that side open.
func (a *appointmentDatabase) GetAppointmentsBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	scheduled := bson.M{}
	if !from.IsZero() {
		scheduled["$gte"] = from
	}
	if !to.IsZero() {
		scheduled["$lt"] = to
	}
	filter := bson.M{}
	if len(scheduled) > 0 {
		filter["scheduledAt"] = scheduled
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := a.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	appointments := []models.Appointment{}
	if err := decodeAll(ctx, cursor, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *appointmentDatabase) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	appointment.ApplyDefaults()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	_, err := a.collection.InsertOne(ctx, appointment)
	return err
}

// UpdateAppointmentStatus changes the status and returns the stored appointment
func (a *appointmentDatabase) UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	}
	res, err := a.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return a.GetAppointmentByID(ctx, id)
}
