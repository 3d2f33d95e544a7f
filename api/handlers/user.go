package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/logging"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// Sessions forgets the cached logins of a user
type Sessions interface {
	Forget(userID string) int
}

// User exists to hold the user endpoints
type User struct {
	DB       databases.UserDatabase
	Clinic   *services.Clinic
	Sessions Sessions
}

// RegisterHandler creates a patient account. Anyone can call it.
func (u User) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	u.createUser(w, r, models.RolePatient)
}

// CreateStaffHandler lets an admin create an account of any role
func (u User) CreateStaffHandler(w http.ResponseWriter, r *http.Request) {
	u.createUser(w, r, "")
}

func (u User) createUser(w http.ResponseWriter, r *http.Request, forceRole string) {
	var req models.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if forceRole != "" {
		req.Role = forceRole
	}
	if req.Role == "" {
		req.Role = models.RolePatient
	}
	if err := models.Validate(req); err != nil {
		config.ErrorStatus("invalid user", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := u.DB.GetUserByEmail(ctx, req.Email)
	if err == nil {
		config.ErrorStatus("email already registered", http.StatusConflict, w, errors.New(strings.ToLower(req.Email)))
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		writeError(w, "failed to check email", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}
	user := models.User{
		Email:     req.Email,
		Password:  string(hash),
		Name:      req.Name,
		Role:      req.Role,
		Specialty: req.Specialty,
	}
	if err := u.DB.CreateUser(ctx, &user); err != nil {
		writeError(w, "failed to create user", err)
		return
	}
	logging.FromContext(r.Context()).Infow("created user", "userId", user.ID.Hex(), "role", user.Role)
	writeJSON(w, r, http.StatusCreated, user)
}

// UserHandler returns a user by ID
func (u User) UserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	if !canAccess(r, userID) {
		forbidden(w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.GetUserByID(ctx, userID)
	if err != nil {
		writeError(w, "failed to get user by ID", err)
		return
	}
	writeJSON(w, r, http.StatusOK, user)
}

// DeleteUserHandler removes an account with its patient profiles and records.
// Only the owner or an admin may do this.
func (u User) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	if api.UserID(r) != userID && !api.HasRole(r, models.RoleAdmin) {
		forbidden(w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	result, err := u.Clinic.DeleteAccount(ctx, userID)
	if err != nil {
		writeError(w, "failed to delete user", err)
		return
	}
	if u.Sessions != nil {
		dropped := u.Sessions.Forget(userID)
		logging.FromContext(r.Context()).Infow("dropped cached sessions", "userId", userID, "count", dropped)
	}
	writeJSON(w, r, http.StatusOK, result)
}
