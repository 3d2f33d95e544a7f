package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	cldapi "github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// Record exists to hold the medical record endpoints
type Record struct {
	DB     databases.RecordDatabase
	Clinic *services.Clinic
	Config config.Config
	Now    func() time.Time
}

type signatureRequest struct {
	PatientID string `json:"patientId"`
}

// GenerateSignatureHandler signs a direct upload to Cloudinary. The client
// uploads the file itself and then creates the record with the returned url.
func (rec Record) GenerateSignatureHandler(w http.ResponseWriter, r *http.Request) {
	var req signatureRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
			return
		}
	}
	if req.PatientID == "" {
		req.PatientID = api.UserID(r)
	}
	if !primitive.IsValidObjectID(req.PatientID) {
		config.ErrorStatus("patientId is required", http.StatusBadRequest, w, databases.ErrInvalidID)
		return
	}
	if !canAccess(r, req.PatientID) {
		forbidden(w)
		return
	}
	if rec.Config.CloudinaryAPISecret == "" {
		config.ErrorStatus("uploads are not configured", http.StatusServiceUnavailable, w, errors.New("missing cloudinary secret"))
		return
	}

	now := time.Now
	if rec.Now != nil {
		now = rec.Now
	}
	sig := models.UploadSignature{
		CloudName:    rec.Config.CloudinaryCloudName,
		APIKey:       rec.Config.CloudinaryAPIKey,
		Timestamp:    strconv.FormatInt(now().Unix(), 10),
		Folder:       "records/" + req.PatientID,
		UploadPreset: rec.Config.CloudinaryUploadPreset,
	}
	params := url.Values{}
	params.Set("timestamp", sig.Timestamp)
	params.Set("folder", sig.Folder)
	if sig.UploadPreset != "" {
		params.Set("upload_preset", sig.UploadPreset)
	}
	signature, err := cldapi.SignParameters(params, rec.Config.CloudinaryAPISecret)
	if err != nil {
		config.ErrorStatus("failed to sign upload", http.StatusInternalServerError, w, err)
		return
	}
	sig.Signature = signature
	writeJSON(w, r, http.StatusOK, sig)
}

// CreateRecordHandler stores a record pointing at an uploaded file
func (rec Record) CreateRecordHandler(w http.ResponseWriter, r *http.Request) {
	var record models.Record
	if err := decodeBody(r, &record); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if record.PatientID.IsZero() {
		if oid, err := primitive.ObjectIDFromHex(api.UserID(r)); err == nil {
			record.PatientID = oid
		}
	}
	if !canAccess(r, record.PatientID.Hex()) {
		forbidden(w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := rec.Clinic.CreateRecord(ctx, &record); err != nil {
		writeError(w, "failed to create record", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, record)
}

// RecordsHandler lists a patient's records, newest first
func (rec Record) RecordsHandler(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patient_id")
	if patientID == "" {
		patientID = api.UserID(r)
	}
	if !canAccess(r, patientID) {
		forbidden(w)
		return
	}
	limit, page := getPage(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	response, err := rec.DB.GetRecordsByPatientID(ctx, patientID, limit, page)
	if err != nil {
		writeError(w, "failed to get records", err)
		return
	}
	writeJSON(w, r, http.StatusOK, response)
}

// RecordByIDHandler returns a single record
func (rec Record) RecordByIDHandler(w http.ResponseWriter, r *http.Request) {
	record, ok := rec.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, record)
}

// DeleteRecordHandler removes a record. The stored file is left in place.
func (rec Record) DeleteRecordHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := rec.load(w, r); !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := rec.DB.DeleteRecord(ctx, id); err != nil {
		writeError(w, "failed to delete record", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id})
}

func (rec Record) load(w http.ResponseWriter, r *http.Request) (*models.Record, bool) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := rec.DB.GetRecordByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "failed to get record", err)
		return nil, false
	}
	if !canAccess(r, record.PatientID.Hex()) {
		forbidden(w)
		return nil, false
	}
	return record, true
}
