package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/logging"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// Page size defaults shared by the list endpoints
const (
	defaultLimit = int64(20)
	maxLimit     = int64(100)
)

// getPage reads the limit and page query parameters, falling back to the
// defaults when they are missing or malformed.
func getPage(r *http.Request) (limit, page int64) {
	limit = defaultLimit
	if parsed, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if parsed, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64); err == nil && parsed >= 0 {
		page = parsed
	}
	// page*limit must stay a valid offset
	if page > math.MaxInt64/limit {
		page = math.MaxInt64 / limit
	}
	return limit, page
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		logging.FromContext(r.Context()).Warnw("failed to write response", "error", err)
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// errorStatus maps store and service errors onto http status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, databases.ErrInvalidID), errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	case errors.Is(err, services.ErrReferenceNotFound), errors.Is(err, services.ErrReferenceMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	case mongo.IsDuplicateKeyError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, message string, err error) {
	config.ErrorStatus(message, errorStatus(err), w, err)
}

// canAccess lets staff see everything and patients only what they own
func canAccess(r *http.Request, ownerID string) bool {
	if api.HasRole(r, models.RoleAdmin, models.RoleDoctor) {
		return true
	}
	return ownerID != "" && api.UserID(r) == ownerID
}

func forbidden(w http.ResponseWriter) {
	config.ErrorStatus("not allowed", http.StatusForbidden, w, errors.New("forbidden"))
}
