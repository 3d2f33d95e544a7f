package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/databases/mocks"
	"github.com/linesmerrill/hospital-api/models"
)

func TestSchedulesHandler(t *testing.T) {
	thursday := func() time.Time { return time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC) }

	tests := []struct {
		name           string
		query          string
		weekday        time.Weekday
		expectedStatus int
	}{
		{name: "defaults to today", weekday: time.Thursday, expectedStatus: http.StatusOK},
		{name: "full name", query: "?weekday=Monday", weekday: time.Monday, expectedStatus: http.StatusOK},
		{name: "short name in any case", query: "?weekday=tue", weekday: time.Tuesday, expectedStatus: http.StatusOK},
		{name: "unknown day", query: "?weekday=someday", expectedStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mocks.NewDoctorScheduleDatabase(t)
			if tt.expectedStatus == http.StatusOK {
				db.On("GetSchedulesByWeekday", mock.Anything, tt.weekday).Return([]models.DoctorSchedule{
					{ID: primitive.NewObjectID(), DoctorName: "Dr. Emily Carter", Weekday: tt.weekday, StartTime: "09:00", EndTime: "13:00", Available: true},
				}, nil)
			}
			s := Schedule{DB: db, Now: thursday}

			rr := serve(s.SchedulesHandler, asUser(newRequest(t, "GET", "/api/v1/schedules"+tt.query, nil, nil), primitive.NewObjectID(), models.RoleAdmin))

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestCreateScheduleHandler(t *testing.T) {
	doctor := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           map[string]interface{}
		setup          func(users *mocks.UserDatabase, db *mocks.DoctorScheduleDatabase)
		expectedStatus int
	}{
		{
			name: "copies the doctor's details",
			body: map[string]interface{}{"doctorId": doctor.Hex(), "weekday": 1, "startTime": "09:00", "endTime": "13:00", "available": true},
			setup: func(users *mocks.UserDatabase, db *mocks.DoctorScheduleDatabase) {
				users.On("GetUserByID", mock.Anything, doctor.Hex()).Return(&models.User{ID: doctor, Name: "Dr. Emily Carter", Role: models.RoleDoctor, Specialty: "Cardiology"}, nil)
				db.On("CreateSchedule", mock.Anything, mock.MatchedBy(func(s *models.DoctorSchedule) bool {
					return s.DoctorName == "Dr. Emily Carter" && s.Specialty == "Cardiology" && s.Weekday == time.Monday
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "bad time",
			body: map[string]interface{}{"doctorId": doctor.Hex(), "weekday": 1, "startTime": "9am", "endTime": "13:00"},
			setup: func(users *mocks.UserDatabase, db *mocks.DoctorScheduleDatabase) {
				users.On("GetUserByID", mock.Anything, doctor.Hex()).Return(&models.User{ID: doctor, Name: "Dr. Emily Carter", Role: models.RoleDoctor}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not a doctor",
			body: map[string]interface{}{"doctorId": doctor.Hex(), "weekday": 1, "startTime": "09:00", "endTime": "13:00"},
			setup: func(users *mocks.UserDatabase, db *mocks.DoctorScheduleDatabase) {
				users.On("GetUserByID", mock.Anything, doctor.Hex()).Return(&models.User{ID: doctor, Role: models.RolePatient}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown doctor",
			body: map[string]interface{}{"doctorId": doctor.Hex(), "weekday": 1, "startTime": "09:00", "endTime": "13:00"},
			setup: func(users *mocks.UserDatabase, db *mocks.DoctorScheduleDatabase) {
				users.On("GetUserByID", mock.Anything, doctor.Hex()).Return(nil, mongo.ErrNoDocuments)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewUserDatabase(t)
			db := mocks.NewDoctorScheduleDatabase(t)
			tt.setup(users, db)
			s := Schedule{DB: db, Users: users}

			rr := serve(s.CreateScheduleHandler, asUser(newRequest(t, "POST", "/api/v1/schedules", tt.body, nil), primitive.NewObjectID(), models.RoleAdmin))

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}
