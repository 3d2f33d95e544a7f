// Package docs Hospital API.
//
// Documentation of the Hospital API backing the admin dashboard.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//     - bearer
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// swagger:route GET /health health healthEndpointID
// Lists the health of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/admin/dashboard dashboard dashboardID
// Gets the admin dashboard: kpi cards, charts, calendar, today's doctor schedule and recent appointments.
// responses:
//   200: dashboardResponse

// swagger:response dashboardResponse
type dashboardResponseWrapper struct {
	// in:body
	Body models.Dashboard
}

// swagger:route GET /api/v1/appointments appointments appointmentsID
// Lists appointments for a status tab (All, Confirmed, Pending, Cancelled), paginated.
// responses:
//   200: appointmentsResponse

// swagger:response appointmentsResponse
type appointmentsResponseWrapper struct {
	// in:body
	Body models.AppointmentResponse
}

// swagger:parameters appointmentsID
type appointmentsParams struct {
	// in:query
	Status string `json:"status"`
	// in:query
	Limit int `json:"limit"`
	// in:query
	Page int `json:"page"`
	// in:query
	From string `json:"from"`
	// in:query
	To string `json:"to"`
}

// swagger:route PATCH /api/v1/appointments/{id}/status appointments appointmentStatusID
// Changes the status of a single appointment and notifies websocket listeners.
// responses:
//   200: appointmentRowResponse

// swagger:response appointmentRowResponse
type appointmentRowResponseWrapper struct {
	// in:body
	Body models.AppointmentRow
}

// swagger:route GET /api/v1/users/{user_id}/profiles profiles profilesByUserID
// Lists the patient profiles owned by a user.
// responses:
//   200: profilesResponse

// swagger:response profilesResponse
type profilesResponseWrapper struct {
	// in:body
	Body models.PatientProfileResponse
}

// swagger:route GET /api/v1/profiles/{id} profiles profileByID
// Gets a single patient profile by ID.
// responses:
//   200: profileResponse

// swagger:response profileResponse
type profileResponseWrapper struct {
	// in:body
	Body models.PatientProfile
}

// swagger:route GET /api/v1/prescriptions/{id} prescriptions prescriptionByID
// Gets a single prescription by ID.
// responses:
//   200: prescriptionResponse

// swagger:response prescriptionResponse
type prescriptionResponseWrapper struct {
	// in:body
	Body models.Prescription
}

// swagger:route GET /api/v1/records records recordsID
// Lists a patient's uploaded records, newest first.
// responses:
//   200: recordsResponse

// swagger:response recordsResponse
type recordsResponseWrapper struct {
	// in:body
	Body models.RecordResponse
}

// swagger:route POST /api/v1/records/signature records recordSignatureID
// Signs a direct upload to external file storage.
// responses:
//   200: signatureResponse

// swagger:response signatureResponse
type signatureResponseWrapper struct {
	// in:body
	Body models.UploadSignature
}

// swagger:route GET /api/v1/schedules schedules schedulesID
// Lists the doctor schedule entries for a weekday.
// responses:
//   200: schedulesResponse

// swagger:response schedulesResponse
type schedulesResponseWrapper struct {
	// in:body
	Body []models.DoctorSchedule
}

// swagger:route DELETE /api/v1/users/{user_id} users deleteUserID
// Deletes an account together with its patient profiles and records.
// responses:
//   200: cascadeResponse

// swagger:response cascadeResponse
type cascadeResponseWrapper struct {
	// in:body
	Body services.CascadeResult
}
