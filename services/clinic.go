// Package services enforces the relationships between hospital documents
// before they are written: every reference must point at an existing record
// of the right kind.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
)

var (
	// ErrValidation wraps field level validation failures
	ErrValidation = errors.New("validation failed")
	// ErrReferenceNotFound is returned when a referenced document does not exist
	ErrReferenceNotFound = errors.New("referenced document not found")
	// ErrReferenceMismatch is returned when references disagree with each other
	ErrReferenceMismatch = errors.New("references do not match")
)

// Clinic owns the writes that carry references to other documents
type Clinic struct {
	Users         databases.UserDatabase
	Profiles      databases.PatientProfileDatabase
	Prescriptions databases.PrescriptionDatabase
	Records       databases.RecordDatabase
	Appointments  databases.AppointmentDatabase
}

// CascadeResult reports what was removed alongside an account
type CascadeResult struct {
	Profiles int64 `json:"profiles"`
	Records  int64 `json:"records"`
}

func validate(v interface{}) error {
	if err := models.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func isMissing(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, databases.ErrInvalidID)
}

// user loads a referenced user and checks its role when one is given
func (c *Clinic) user(ctx context.Context, id, role, field string) (*models.User, error) {
	u, err := c.Users.GetUserByID(ctx, id)
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %s %s", ErrReferenceNotFound, field, id)
		}
		return nil, err
	}
	if role != "" && u.Role != role {
		return nil, fmt.Errorf("%w: %s %s is not a %s", ErrReferenceMismatch, field, id, role)
	}
	return u, nil
}

// CreatePatientProfile stores a profile for an existing account owner
func (c *Clinic) CreatePatientProfile(ctx context.Context, profile *models.PatientProfile) error {
	profile.ApplyDefaults()
	if err := validate(profile); err != nil {
		return err
	}
	if _, err := c.user(ctx, profile.UserID.Hex(), "", "userId"); err != nil {
		return err
	}
	return c.Profiles.CreatePatientProfile(ctx, profile)
}

// UpdatePatientProfile edits a profile. The owner of a profile never changes.
func (c *Clinic) UpdatePatientProfile(ctx context.Context, id string, profile *models.PatientProfile) (*models.PatientProfile, error) {
	existing, err := c.Profiles.GetPatientProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !profile.UserID.IsZero() && profile.UserID != existing.UserID {
		return nil, fmt.Errorf("%w: profile %s belongs to another account", ErrReferenceMismatch, id)
	}
	profile.ID = existing.ID
	profile.UserID = existing.UserID
	profile.CreatedAt = existing.CreatedAt
	profile.ApplyDefaults()
	if err := validate(profile); err != nil {
		return nil, err
	}
	if err := c.Profiles.UpdatePatientProfile(ctx, id, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CreatePrescription stores a prescription after checking that its doctor and
// patient are the ones on the referenced appointment.
func (c *Clinic) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	prescription.ApplyDefaults()
	if err := validate(prescription); err != nil {
		return err
	}
	appt, err := c.Appointments.GetAppointmentByID(ctx, prescription.AppointmentID.Hex())
	if err != nil {
		if isMissing(err) {
			return fmt.Errorf("%w: appointmentId %s", ErrReferenceNotFound, prescription.AppointmentID.Hex())
		}
		return err
	}
	if appt.DoctorID != prescription.DoctorID {
		return fmt.Errorf("%w: doctorId is not the doctor on appointment %s", ErrReferenceMismatch, appt.ID.Hex())
	}
	if appt.PatientID != prescription.PatientID {
		return fmt.Errorf("%w: patientId is not the patient on appointment %s", ErrReferenceMismatch, appt.ID.Hex())
	}
	return c.Prescriptions.CreatePrescription(ctx, prescription)
}

// CreateRecord stores a record for an existing patient. The file must already
// live in external storage reachable over http(s).
func (c *Clinic) CreateRecord(ctx context.Context, record *models.Record) error {
	record.ApplyDefaults()
	if err := validate(record); err != nil {
		return err
	}
	if _, err := c.user(ctx, record.PatientID.Hex(), models.RolePatient, "patientId"); err != nil {
		return err
	}
	return c.Records.CreateRecord(ctx, record)
}

// CreateAppointment books an appointment between an existing patient and doctor,
// copying their names onto the appointment for the admin tables.
func (c *Clinic) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	appointment.ApplyDefaults()
	if err := validate(appointment); err != nil {
		return err
	}
	patient, err := c.user(ctx, appointment.PatientID.Hex(), models.RolePatient, "patientId")
	if err != nil {
		return err
	}
	doctor, err := c.user(ctx, appointment.DoctorID.Hex(), models.RoleDoctor, "doctorId")
	if err != nil {
		return err
	}
	if appointment.PatientName == "" {
		appointment.PatientName = patient.Name
	}
	appointment.DoctorName = doctor.Name
	if appointment.Department == "" {
		appointment.Department = doctor.Specialty
	}
	return c.Appointments.CreateAppointment(ctx, appointment)
}

// DeleteAccount removes a user together with the profiles and records that
// belong to it.
func (c *Clinic) DeleteAccount(ctx context.Context, userID string) (*CascadeResult, error) {
	if _, err := c.Users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	profiles, err := c.Profiles.DeletePatientProfilesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete patient profiles: %w", err)
	}
	records, err := c.Records.DeleteRecordsByPatientID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete records: %w", err)
	}
	if err := c.Users.DeleteUser(ctx, userID); err != nil {
		return nil, err
	}
	zap.S().Infow("deleted account",
		"userId", userID,
		"profiles", profiles,
		"records", records)
	return &CascadeResult{Profiles: profiles, Records: records}, nil
}
