// Package fixtures loads the sample hospital data used to seed a fresh
// database and to exercise the admin pages in tests.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"

	"github.com/linesmerrill/hospital-api/models"
)

//go:embed sample.yaml
var sample []byte

// Set is the raw fixture file. People are referenced by key.
type Set struct {
	Doctors      []Doctor      `yaml:"doctors"`
	Patients     []Patient     `yaml:"patients"`
	Appointments []Appointment `yaml:"appointments"`
	Schedules    []Schedule    `yaml:"schedules"`
}

// Doctor is a doctor account
type Doctor struct {
	Key       string `yaml:"key"`
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	Specialty string `yaml:"specialty"`
}

// Patient is a patient account with its own profile and any dependents
type Patient struct {
	Key         string      `yaml:"key"`
	Name        string      `yaml:"name"`
	Email       string      `yaml:"email"`
	DateOfBirth string      `yaml:"dateOfBirth"`
	Dependents  []Dependent `yaml:"dependents"`
}

// Dependent is an extra profile held by a patient account
type Dependent struct {
	Name        string `yaml:"name"`
	DateOfBirth string `yaml:"dateOfBirth"`
	Relation    string `yaml:"relation"`
}

// Appointment references a patient and doctor by key
type Appointment struct {
	Patient     string    `yaml:"patient"`
	Doctor      string    `yaml:"doctor"`
	Department  string    `yaml:"department"`
	ScheduledAt time.Time `yaml:"scheduledAt"`
	Status      string    `yaml:"status"`
	Reason      string    `yaml:"reason"`
}

// Schedule is a weekly duty slot for a doctor
type Schedule struct {
	Doctor    string `yaml:"doctor"`
	Weekday   string `yaml:"weekday"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Available bool   `yaml:"available"`
}

// Data is a fixture set resolved into documents ready to insert
type Data struct {
	Users        []models.User
	Profiles     []models.PatientProfile
	Appointments []models.Appointment
	Schedules    []models.DoctorSchedule
}

// Sample returns the embedded sample set
func Sample() (*Set, error) {
	return parse(sample)
}

// LoadFile reads a fixture set from a yaml file
func LoadFile(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

func parse(b []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &s, nil
}

// Resolve assigns ids and turns key references into object id references.
// Appointment order from the file is kept.
func (s *Set) Resolve() (*Data, error) {
	d := &Data{}
	users := map[string]models.User{}

	for _, doc := range s.Doctors {
		u := models.User{
			ID:        primitive.NewObjectID(),
			Email:     strings.ToLower(doc.Email),
			Name:      doc.Name,
			Role:      models.RoleDoctor,
			Specialty: doc.Specialty,
		}
		users[doc.Key] = u
		d.Users = append(d.Users, u)
	}

	for _, p := range s.Patients {
		u := models.User{
			ID:    primitive.NewObjectID(),
			Email: strings.ToLower(p.Email),
			Name:  p.Name,
			Role:  models.RolePatient,
		}
		users[p.Key] = u
		d.Users = append(d.Users, u)

		self := models.NewPatientProfile(u.ID, p.Name, p.DateOfBirth, models.RelationSelf)
		self.ID = primitive.NewObjectID()
		d.Profiles = append(d.Profiles, *self)
		for _, dep := range p.Dependents {
			prof := models.NewPatientProfile(u.ID, dep.Name, dep.DateOfBirth, dep.Relation)
			prof.ID = primitive.NewObjectID()
			d.Profiles = append(d.Profiles, *prof)
		}
	}

	for i, a := range s.Appointments {
		patient, ok := users[a.Patient]
		if !ok || patient.Role != models.RolePatient {
			return nil, fmt.Errorf("appointment %d: unknown patient %q", i, a.Patient)
		}
		doctor, ok := users[a.Doctor]
		if !ok || doctor.Role != models.RoleDoctor {
			return nil, fmt.Errorf("appointment %d: unknown doctor %q", i, a.Doctor)
		}
		appt := models.Appointment{
			ID:          primitive.NewObjectID(),
			PatientID:   patient.ID,
			PatientName: patient.Name,
			DoctorID:    doctor.ID,
			DoctorName:  doctor.Name,
			Department:  a.Department,
			ScheduledAt: a.ScheduledAt.UTC(),
			Status:      a.Status,
			Reason:      a.Reason,
		}
		appt.ApplyDefaults()
		d.Appointments = append(d.Appointments, appt)
	}

	for i, sc := range s.Schedules {
		doctor, ok := users[sc.Doctor]
		if !ok || doctor.Role != models.RoleDoctor {
			return nil, fmt.Errorf("schedule %d: unknown doctor %q", i, sc.Doctor)
		}
		wd, err := ParseWeekday(sc.Weekday)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: %w", i, err)
		}
		d.Schedules = append(d.Schedules, models.DoctorSchedule{
			ID:         primitive.NewObjectID(),
			DoctorID:   doctor.ID,
			DoctorName: doctor.Name,
			Specialty:  doctor.Specialty,
			Weekday:    wd,
			StartTime:  sc.Start,
			EndTime:    sc.End,
			Available:  sc.Available,
		})
	}

	return d, nil
}

// ParseWeekday accepts a full English weekday name in any case
func ParseWeekday(s string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), s) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
