package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/appointments"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/logging"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

const dateLayout = "2006-01-02"

// Appointment exists to hold the appointment endpoints
type Appointment struct {
	DB     databases.AppointmentDatabase
	Clinic *services.Clinic
	Hub    *AppointmentHub
}

// AppointmentsHandler backs the admin appointments table. The status query
// parameter selects a tab, limit and page select the slice of rows, and the
// optional from/to dates bound the scheduled time.
func (a Appointment) AppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	tab, err := appointments.ParseTab(r.URL.Query().Get("status"))
	if err != nil {
		config.ErrorStatus("invalid status tab", http.StatusBadRequest, w, err)
		return
	}
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		config.ErrorStatus("invalid from date", http.StatusBadRequest, w, err)
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		config.ErrorStatus("invalid to date", http.StatusBadRequest, w, err)
		return
	}
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}
	limit, page := getPage(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	list, err := a.DB.GetAppointmentsBetween(ctx, from, to)
	if err != nil {
		writeError(w, "failed to get appointments", err)
		return
	}
	if !api.HasRole(r, models.RoleAdmin, models.RoleDoctor) {
		list = ownedBy(list, api.UserID(r))
	}

	filtered := appointments.Filter(list, tab)
	rows, pagination := appointments.Paginate(filtered, limit, page)
	writeJSON(w, r, http.StatusOK, models.AppointmentResponse{
		Tab:          string(tab),
		Counts:       appointments.CountByTab(list),
		Appointments: appointments.Rows(rows),
		Pagination:   pagination,
	})
}

// CreateAppointmentHandler books an appointment. Patients can only book for themselves.
func (a Appointment) CreateAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	var appointment models.Appointment
	if err := decodeBody(r, &appointment); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if !api.HasRole(r, models.RoleAdmin, models.RoleDoctor) {
		oid, err := primitive.ObjectIDFromHex(api.UserID(r))
		if err != nil || (!appointment.PatientID.IsZero() && appointment.PatientID != oid) {
			forbidden(w)
			return
		}
		appointment.PatientID = oid
		appointment.Status = models.StatusPending
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := a.Clinic.CreateAppointment(ctx, &appointment); err != nil {
		writeError(w, "failed to create appointment", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, models.AppointmentRow{
		Appointment: appointment,
		StatusClass: appointments.StatusStyle(appointment.Status),
	})
}

// UpdateAppointmentStatusHandler confirms, cancels or reopens an appointment
// and pushes the change to live subscribers. A patient may only cancel their
// own appointment.
func (a Appointment) UpdateAppointmentStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var update models.AppointmentStatusUpdate
	if err := decodeBody(r, &update); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if !appointments.ValidStatus(update.Status) {
		config.ErrorStatus("invalid status", http.StatusBadRequest, w, fmt.Errorf("unknown status %q", update.Status))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if !api.HasRole(r, models.RoleAdmin, models.RoleDoctor) {
		existing, err := a.DB.GetAppointmentByID(ctx, id)
		if err != nil {
			writeError(w, "failed to get appointment", err)
			return
		}
		if existing.PatientID.Hex() != api.UserID(r) || update.Status != models.StatusCancelled {
			forbidden(w)
			return
		}
	}

	appointment, err := a.DB.UpdateAppointmentStatus(ctx, id, update.Status)
	if err != nil {
		writeError(w, "failed to update appointment status", err)
		return
	}

	event := models.AppointmentStatusUpdate{
		AppointmentID: appointment.ID.Hex(),
		Status:        appointment.Status,
		UpdatedAt:     appointment.UpdatedAt.Time().UTC(),
	}
	if a.Hub != nil {
		a.Hub.Broadcast(event)
	}
	logging.FromContext(r.Context()).Infow("appointment status changed",
		"appointmentId", event.AppointmentID,
		"status", event.Status)

	writeJSON(w, r, http.StatusOK, models.AppointmentRow{
		Appointment: *appointment,
		StatusClass: appointments.StatusStyle(appointment.Status),
	})
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("dates must look like 2006-01-02")
	}
	return t, nil
}

func ownedBy(list []models.Appointment, userID string) []models.Appointment {
	owned := []models.Appointment{}
	for _, appt := range list {
		if appt.PatientID.Hex() == userID {
			owned = append(owned, appt)
		}
	}
	return owned
}
