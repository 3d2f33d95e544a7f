package fixtures

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/databases"
)

// ErrAlreadySeeded is returned when a fixture account already exists
var ErrAlreadySeeded = errors.New("fixture data already present")

// Stores are the collections a fixture set is written to
type Stores struct {
	Users        databases.UserDatabase
	Profiles     databases.PatientProfileDatabase
	Appointments databases.AppointmentDatabase
	Schedules    databases.DoctorScheduleDatabase
}

// Summary counts the documents written by Seed
type Summary struct {
	Users        int
	Profiles     int
	Appointments int
	Schedules    int
}

// Seed writes the resolved data. Every account gets the same password hash.
// Nothing is written when one of the accounts already exists.
func (d *Data) Seed(ctx context.Context, stores Stores, passwordHash string) (Summary, error) {
	var sum Summary
	for _, u := range d.Users {
		_, err := stores.Users.GetUserByEmail(ctx, u.Email)
		if err == nil {
			return sum, fmt.Errorf("%w: %s", ErrAlreadySeeded, u.Email)
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return sum, err
		}
	}

	for i := range d.Users {
		d.Users[i].Password = passwordHash
		if err := stores.Users.CreateUser(ctx, &d.Users[i]); err != nil {
			return sum, fmt.Errorf("user %s: %w", d.Users[i].Email, err)
		}
		sum.Users++
	}
	for i := range d.Profiles {
		if err := stores.Profiles.CreatePatientProfile(ctx, &d.Profiles[i]); err != nil {
			return sum, fmt.Errorf("profile %s: %w", d.Profiles[i].Name, err)
		}
		sum.Profiles++
	}
	for i := range d.Appointments {
		if err := stores.Appointments.CreateAppointment(ctx, &d.Appointments[i]); err != nil {
			return sum, fmt.Errorf("appointment %d: %w", i, err)
		}
		sum.Appointments++
	}
	for i := range d.Schedules {
		if err := stores.Schedules.CreateSchedule(ctx, &d.Schedules[i]); err != nil {
			return sum, fmt.Errorf("schedule %d: %w", i, err)
		}
		sum.Schedules++
	}
	return sum, nil
}
