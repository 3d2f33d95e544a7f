package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/databases/mocks"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setup          func(db *mocks.UserDatabase)
		expectedStatus int
	}{
		{
			name: "creates a patient even when another role is asked for",
			body: map[string]string{"email": "new@example.com", "password": "longenough", "name": "New Patient", "role": "admin"},
			setup: func(db *mocks.UserDatabase) {
				db.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, mongo.ErrNoDocuments)
				db.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RolePatient && u.Password != "longenough" && u.Password != ""
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: map[string]string{"email": "taken@example.com", "password": "longenough", "name": "Dup"},
			setup: func(db *mocks.UserDatabase) {
				db.On("GetUserByEmail", mock.Anything, "taken@example.com").Return(&models.User{}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "password too short",
			body:           map[string]string{"email": "new@example.com", "password": "short", "name": "New"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "lookup fails",
			body: map[string]string{"email": "new@example.com", "password": "longenough", "name": "New"},
			setup: func(db *mocks.UserDatabase) {
				db.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mocks.NewUserDatabase(t)
			if tt.setup != nil {
				tt.setup(db)
			}
			u := User{DB: db}

			rr := serve(u.RegisterHandler, newRequest(t, "POST", "/api/v1/users", tt.body, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedStatus == http.StatusCreated {
				var got map[string]interface{}
				decode(t, rr, &got)
				assert.Equal(t, models.RolePatient, got["role"])
				assert.NotContains(t, got, "password")
			}
		})
	}
}

func TestCreateStaffHandlerKeepsRole(t *testing.T) {
	db := mocks.NewUserDatabase(t)
	db.On("GetUserByEmail", mock.Anything, "doc@example.com").Return(nil, mongo.ErrNoDocuments)
	db.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleDoctor && u.Specialty == "Cardiology"
	})).Return(nil)
	u := User{DB: db}

	body := map[string]string{"email": "doc@example.com", "password": "longenough", "name": "Dr. Emily Carter", "role": "doctor", "specialty": "Cardiology"}
	req := asUser(newRequest(t, "POST", "/api/v1/admin/users", body, nil), primitive.NewObjectID(), models.RoleAdmin)
	rr := serve(u.CreateStaffHandler, req)

	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestUserHandler(t *testing.T) {
	self := primitive.NewObjectID()
	other := primitive.NewObjectID()

	tests := []struct {
		name           string
		caller         primitive.ObjectID
		role           string
		target         primitive.ObjectID
		setup          func(db *mocks.UserDatabase)
		expectedStatus int
	}{
		{
			name:   "self",
			caller: self, role: models.RolePatient, target: self,
			setup: func(db *mocks.UserDatabase) {
				db.On("GetUserByID", mock.Anything, self.Hex()).Return(&models.User{ID: self, Name: "Me"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "another patient",
			caller: self, role: models.RolePatient, target: other,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "admin looking up a missing user",
			caller: self, role: models.RoleAdmin, target: other,
			setup: func(db *mocks.UserDatabase) {
				db.On("GetUserByID", mock.Anything, other.Hex()).Return(nil, mongo.ErrNoDocuments)
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mocks.NewUserDatabase(t)
			if tt.setup != nil {
				tt.setup(db)
			}
			u := User{DB: db}

			req := newRequest(t, "GET", "/api/v1/users/"+tt.target.Hex(), nil, map[string]string{"user_id": tt.target.Hex()})
			rr := serve(u.UserHandler, asUser(req, tt.caller, tt.role))

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestDeleteUserHandlerCascades(t *testing.T) {
	id := primitive.NewObjectID()
	users := mocks.NewUserDatabase(t)
	profiles := mocks.NewPatientProfileDatabase(t)
	records := mocks.NewRecordDatabase(t)
	users.On("GetUserByID", mock.Anything, id.Hex()).Return(&models.User{ID: id}, nil)
	profiles.On("DeletePatientProfilesByUserID", mock.Anything, id.Hex()).Return(int64(2), nil)
	records.On("DeleteRecordsByPatientID", mock.Anything, id.Hex()).Return(int64(1), nil)
	users.On("DeleteUser", mock.Anything, id.Hex()).Return(nil)

	u := User{DB: users, Clinic: &services.Clinic{Users: users, Profiles: profiles, Records: records}}
	req := newRequest(t, "DELETE", "/api/v1/users/"+id.Hex(), nil, map[string]string{"user_id": id.Hex()})
	rr := serve(u.DeleteUserHandler, asUser(req, id, models.RolePatient))

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"profiles": 2, "records": 1}`, rr.Body.String())
}

type forgetful struct {
	forgotten []string
}

func (f *forgetful) Forget(userID string) int {
	f.forgotten = append(f.forgotten, userID)
	return 1
}

func TestDeleteUserHandlerForgetsSessions(t *testing.T) {
	id := primitive.NewObjectID()
	users := mocks.NewUserDatabase(t)
	profiles := mocks.NewPatientProfileDatabase(t)
	records := mocks.NewRecordDatabase(t)
	users.On("GetUserByID", mock.Anything, id.Hex()).Return(&models.User{ID: id}, nil)
	profiles.On("DeletePatientProfilesByUserID", mock.Anything, id.Hex()).Return(int64(0), nil)
	records.On("DeleteRecordsByPatientID", mock.Anything, id.Hex()).Return(int64(0), nil)
	users.On("DeleteUser", mock.Anything, id.Hex()).Return(nil)
	sessions := &forgetful{}

	u := User{DB: users, Clinic: &services.Clinic{Users: users, Profiles: profiles, Records: records}, Sessions: sessions}
	req := newRequest(t, "DELETE", "/api/v1/users/"+id.Hex(), nil, map[string]string{"user_id": id.Hex()})
	rr := serve(u.DeleteUserHandler, asUser(req, primitive.NewObjectID(), models.RoleAdmin))

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, []string{id.Hex()}, sessions.forgotten)
}

func TestDeleteUserHandlerKeepsSessionsOnFailure(t *testing.T) {
	id := primitive.NewObjectID()
	users := mocks.NewUserDatabase(t)
	users.On("GetUserByID", mock.Anything, id.Hex()).Return(nil, mongo.ErrNoDocuments)
	sessions := &forgetful{}

	u := User{DB: users, Clinic: &services.Clinic{Users: users}, Sessions: sessions}
	req := newRequest(t, "DELETE", "/api/v1/users/"+id.Hex(), nil, map[string]string{"user_id": id.Hex()})
	rr := serve(u.DeleteUserHandler, asUser(req, id, models.RolePatient))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, sessions.forgotten)
}

func TestDeleteUserHandlerForbidden(t *testing.T) {
	target := primitive.NewObjectID()
	u := User{DB: mocks.NewUserDatabase(t)}

	for _, role := range []string{models.RolePatient, models.RoleDoctor} {
		req := newRequest(t, "DELETE", "/api/v1/users/"+target.Hex(), nil, map[string]string{"user_id": target.Hex()})
		rr := serve(u.DeleteUserHandler, asUser(req, primitive.NewObjectID(), role))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	}
}
