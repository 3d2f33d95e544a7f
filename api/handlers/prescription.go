package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// Prescription exists to hold the prescription endpoints
type Prescription struct {
	DB     databases.PrescriptionDatabase
	Clinic *services.Clinic
}

// CreatePrescriptionHandler writes a prescription for an appointment. Only
// doctors and admins reach this handler.
func (p Prescription) CreatePrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	var prescription models.Prescription
	if err := decodeBody(r, &prescription); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := p.Clinic.CreatePrescription(ctx, &prescription); err != nil {
		writeError(w, "failed to create prescription", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, prescription)
}

// PrescriptionByIDHandler returns a single prescription
func (p Prescription) PrescriptionByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	prescription, err := p.DB.GetPrescriptionByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "failed to get prescription", err)
		return
	}
	if !canAccess(r, prescription.PatientID.Hex()) {
		forbidden(w)
		return
	}
	writeJSON(w, r, http.StatusOK, prescription)
}

// PrescriptionsHandler lists prescriptions for a patient or an appointment
func (p Prescription) PrescriptionsHandler(w http.ResponseWriter, r *http.Request) {
	filter := databases.PrescriptionFilter{
		PatientID:     r.URL.Query().Get("patient_id"),
		AppointmentID: r.URL.Query().Get("appointment_id"),
	}
	if filter.PatientID == "" && filter.AppointmentID == "" {
		config.ErrorStatus("patient_id or appointment_id is required", http.StatusBadRequest, w, errors.New("missing filter"))
		return
	}
	if filter.PatientID == "" && !api.HasRole(r, models.RoleAdmin, models.RoleDoctor) {
		forbidden(w)
		return
	}
	if filter.PatientID != "" && !canAccess(r, filter.PatientID) {
		forbidden(w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	prescriptions, err := p.DB.GetPrescriptions(ctx, filter)
	if err != nil {
		writeError(w, "failed to get prescriptions", err)
		return
	}
	writeJSON(w, r, http.StatusOK, prescriptions)
}
