package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine is one ordered entry on a prescription
type Medicine struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Dosage   string `json:"dosage" bson:"dosage"`
	Duration string `json:"duration" bson:"duration"`
}

// Prescription holds the structure for the prescriptions collection in mongo.
// It belongs to one appointment and the doctor and patient of that appointment.
type Prescription struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	AppointmentID primitive.ObjectID `json:"appointmentId" bson:"appointmentId" validate:"required"`
	DoctorID      primitive.ObjectID `json:"doctorId" bson:"doctorId" validate:"required"`
	PatientID     primitive.ObjectID `json:"patientId" bson:"patientId" validate:"required"`
	Medicines     []Medicine         `json:"medicines" bson:"medicines" validate:"dive"`
	CreatedAt     primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// NewPrescription builds a prescription. The medicines are copied so later
// changes to the caller's slice do not leak into the stored order.
func NewPrescription(appointmentID, doctorID, patientID primitive.ObjectID, medicines []Medicine) *Prescription {
	p := &Prescription{
		AppointmentID: appointmentID,
		DoctorID:      doctorID,
		PatientID:     patientID,
		Medicines:     append([]Medicine(nil), medicines...),
	}
	p.ApplyDefaults()
	return p
}

// ApplyDefaults normalises a missing medicine list to an empty one and stamps
// the creation time.
func (p *Prescription) ApplyDefaults() {
	if p.Medicines == nil {
		p.Medicines = []Medicine{}
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	}
}
