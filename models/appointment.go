package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses shown on the admin pages
const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

// Appointment holds the structure for the appointments collection in mongo
type Appointment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	PatientID   primitive.ObjectID `json:"patientId" bson:"patientId" validate:"required"`
	PatientName string             `json:"patientName" bson:"patientName"`
	DoctorID    primitive.ObjectID `json:"doctorId" bson:"doctorId" validate:"required"`
	DoctorName  string             `json:"doctorName" bson:"doctorName"`
	Department  string             `json:"department" bson:"department"`
	ScheduledAt time.Time          `json:"scheduledAt" bson:"scheduledAt" validate:"required"`
	Status      string             `json:"status" bson:"status" validate:"oneof=Confirmed Pending Cancelled"`
	Reason      string             `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// AppointmentRow is an appointment as rendered in a table, with its status style
type AppointmentRow struct {
	Appointment
	StatusClass string `json:"statusClass"`
}

// AppointmentStatusUpdate is the body of a status change request and the
// event pushed to live subscribers once the change is stored.
type AppointmentStatusUpdate struct {
	AppointmentID string    `json:"appointmentId"`
	Status        string    `json:"status" validate:"required,oneof=Confirmed Pending Cancelled"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AppointmentTabCounts holds the number of rows under each appointments tab
type AppointmentTabCounts struct {
	All       int `json:"all"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

// AppointmentResponse represents the admin appointments page payload
type AppointmentResponse struct {
	Tab          string               `json:"tab"`
	Counts       AppointmentTabCounts `json:"counts"`
	Appointments []AppointmentRow     `json:"appointments"`
	Pagination   Pagination           `json:"pagination"`
}

// ApplyDefaults marks new appointments as pending
func (a *Appointment) ApplyDefaults() {
	if a.Status == "" {
		a.Status = StatusPending
	}
}
