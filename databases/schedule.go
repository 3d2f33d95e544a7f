package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/hospital-api/models"
)

const doctorScheduleName = "doctorschedules"

// DoctorScheduleDatabase defines the interface for doctor schedule database operations
type DoctorScheduleDatabase interface {
	GetSchedulesByWeekday(ctx context.Context, weekday time.Weekday) ([]models.DoctorSchedule, error)
	CreateSchedule(ctx context.Context, schedule *models.DoctorSchedule) error
}

type doctorScheduleDatabase struct {
	collection CollectionHelper
}

// NewDoctorScheduleDatabase creates a new doctor schedule database instance
func NewDoctorScheduleDatabase(dbHelper DatabaseHelper) DoctorScheduleDatabase {
	return &doctorScheduleDatabase{
		collection: dbHelper.Collection(doctorScheduleName),
	}
}

// GetSchedulesByWeekday lists the duty slots for a weekday ordered by start time
func (d *doctorScheduleDatabase) GetSchedulesByWeekday(ctx context.Context, weekday time.Weekday) ([]models.DoctorSchedule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}, {Key: "doctorName", Value: 1}})
	cursor, err := d.collection.Find(ctx, bson.M{"weekday": weekday}, opts)
	if err != nil {
		return nil, err
	}
	schedules := []models.DoctorSchedule{}
	if err := decodeAll(ctx, cursor, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (d *doctorScheduleDatabase) CreateSchedule(ctx context.Context, schedule *models.DoctorSchedule) error {
	if schedule.ID.IsZero() {
		schedule.ID = primitive.NewObjectID()
	}
	_, err := d.collection.InsertOne(ctx, schedule)
	return err
}
