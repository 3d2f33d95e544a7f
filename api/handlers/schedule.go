package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// Schedule exists to hold the doctor schedule endpoints
type Schedule struct {
	DB    databases.DoctorScheduleDatabase
	Users databases.UserDatabase
	Now   func() time.Time
}

// SchedulesHandler lists the duty slots for a weekday, today by default
func (s Schedule) SchedulesHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	weekday := now().Weekday()
	if q := r.URL.Query().Get("weekday"); q != "" {
		parsed, ok := parseWeekday(q)
		if !ok {
			config.ErrorStatus("invalid weekday", http.StatusBadRequest, w, errors.New(q))
			return
		}
		weekday = parsed
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	schedules, err := s.DB.GetSchedulesByWeekday(ctx, weekday)
	if err != nil {
		writeError(w, "failed to get schedules", err)
		return
	}
	writeJSON(w, r, http.StatusOK, schedules)
}

// CreateScheduleHandler adds a duty slot for a doctor. The doctor's name and
// specialty are copied from their account.
func (s Schedule) CreateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var schedule models.DoctorSchedule
	if err := decodeBody(r, &schedule); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	doctor, err := s.Users.GetUserByID(ctx, schedule.DoctorID.Hex())
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = fmt.Errorf("%w: doctorId %s", services.ErrReferenceNotFound, schedule.DoctorID.Hex())
	}
	if err != nil {
		writeError(w, "failed to get doctor", err)
		return
	}
	if doctor.Role != models.RoleDoctor {
		writeError(w, "invalid doctor", services.ErrReferenceMismatch)
		return
	}
	schedule.DoctorName = doctor.Name
	if schedule.Specialty == "" {
		schedule.Specialty = doctor.Specialty
	}
	if err := models.Validate(schedule); err != nil {
		config.ErrorStatus("invalid schedule", http.StatusBadRequest, w, err)
		return
	}
	if err := s.DB.CreateSchedule(ctx, &schedule); err != nil {
		writeError(w, "failed to create schedule", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, schedule)
}

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return d, true
		}
	}
	return 0, false
}
