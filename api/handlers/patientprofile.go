package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// PatientProfile exists to hold the patient profile endpoints
type PatientProfile struct {
	DB     databases.PatientProfileDatabase
	Clinic *services.Clinic
}

// PatientProfilesByUserHandler lists the profiles an account owns
func (p PatientProfile) PatientProfilesByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	if !canAccess(r, userID) {
		forbidden(w)
		return
	}
	limit, page := getPage(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	response, err := p.DB.GetPatientProfilesByUserID(ctx, userID, limit, page)
	if err != nil {
		writeError(w, "failed to get patient profiles", err)
		return
	}
	writeJSON(w, r, http.StatusOK, response)
}

// CreatePatientProfileHandler adds a self or dependent profile. The profile
// belongs to the caller unless staff name another owner.
func (p PatientProfile) CreatePatientProfileHandler(w http.ResponseWriter, r *http.Request) {
	var profile models.PatientProfile
	if err := decodeBody(r, &profile); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if profile.UserID.IsZero() {
		if oid, err := primitive.ObjectIDFromHex(api.UserID(r)); err == nil {
			profile.UserID = oid
		}
	}
	if !canAccess(r, profile.UserID.Hex()) {
		forbidden(w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := p.Clinic.CreatePatientProfile(ctx, &profile); err != nil {
		writeError(w, "failed to create patient profile", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, profile)
}

// PatientProfileByIDHandler returns a single profile
func (p PatientProfile) PatientProfileByIDHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := p.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, profile)
}

// UpdatePatientProfileHandler replaces the editable fields of a profile
func (p PatientProfile) UpdatePatientProfileHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := p.load(w, r); !ok {
		return
	}
	var profile models.PatientProfile
	if err := decodeBody(r, &profile); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := p.Clinic.UpdatePatientProfile(ctx, mux.Vars(r)["id"], &profile)
	if err != nil {
		writeError(w, "failed to update patient profile", err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// DeletePatientProfileHandler removes a profile
func (p PatientProfile) DeletePatientProfileHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := p.load(w, r); !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := p.DB.DeletePatientProfile(ctx, id); err != nil {
		writeError(w, "failed to delete patient profile", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id})
}

// load fetches the profile named in the path and checks the caller may see it
func (p PatientProfile) load(w http.ResponseWriter, r *http.Request) (*models.PatientProfile, bool) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	profile, err := p.DB.GetPatientProfileByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "failed to get patient profile", err)
		return nil, false
	}
	if !canAccess(r, profile.UserID.Hex()) {
		forbidden(w)
		return nil, false
	}
	return profile, true
}
