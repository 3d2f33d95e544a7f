package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/dashboard"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
	"github.com/linesmerrill/hospital-api/services"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Hub      *AppointmentHub
	dbHelper databases.DatabaseHelper
	client   databases.ClientHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Hub == nil {
		a.Hub = NewAppointmentHub()
	}

	users := databases.NewUserDatabase(a.dbHelper)
	profiles := databases.NewPatientProfileDatabase(a.dbHelper)
	prescriptions := databases.NewPrescriptionDatabase(a.dbHelper)
	records := databases.NewRecordDatabase(a.dbHelper)
	appointmentDB := databases.NewAppointmentDatabase(a.dbHelper)
	schedules := databases.NewDoctorScheduleDatabase(a.dbHelper)

	clinic := &services.Clinic{
		Users:         users,
		Profiles:      profiles,
		Prescriptions: prescriptions,
		Records:       records,
		Appointments:  appointmentDB,
	}

	// setup go-guardian for middleware
	g := api.NewGuard(users)
	staff := api.RequireRole(models.RoleAdmin, models.RoleDoctor)
	admin := api.RequireRole(models.RoleAdmin)

	u := User{DB: users, Clinic: clinic, Sessions: g}
	pp := PatientProfile{DB: profiles, Clinic: clinic}
	p := Prescription{DB: prescriptions, Clinic: clinic}
	rec := Record{DB: records, Clinic: clinic, Config: a.Config}
	appt := Appointment{DB: appointmentDB, Clinic: clinic, Hub: a.Hub}
	s := Schedule{DB: schedules, Users: users}
	d := Dashboard{Service: &dashboard.Service{
		Users:        users,
		Profiles:     profiles,
		Appointments: appointmentDB,
		Schedules:    schedules,
	}}

	r := mux.NewRouter()
	r.Use(api.RequestLogger)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))

	apiCreate.Handle("/auth/token", g.Middleware(http.HandlerFunc(g.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", g.Middleware(http.HandlerFunc(g.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/users", http.HandlerFunc(u.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/admin/users", g.Middleware(admin(http.HandlerFunc(u.CreateStaffHandler)))).Methods("POST")
	apiCreate.Handle("/users/{user_id}/profiles", g.Middleware(http.HandlerFunc(pp.PatientProfilesByUserHandler))).Methods("GET")
	apiCreate.Handle("/users/{user_id}", g.Middleware(http.HandlerFunc(u.UserHandler))).Methods("GET")
	apiCreate.Handle("/users/{user_id}", g.Middleware(http.HandlerFunc(u.DeleteUserHandler))).Methods("DELETE")

	apiCreate.Handle("/profiles", g.Middleware(http.HandlerFunc(pp.CreatePatientProfileHandler))).Methods("POST")
	apiCreate.Handle("/profiles/{id}", g.Middleware(http.HandlerFunc(pp.PatientProfileByIDHandler))).Methods("GET")
	apiCreate.Handle("/profiles/{id}", g.Middleware(http.HandlerFunc(pp.UpdatePatientProfileHandler))).Methods("PUT")
	apiCreate.Handle("/profiles/{id}", g.Middleware(http.HandlerFunc(pp.DeletePatientProfileHandler))).Methods("DELETE")

	apiCreate.Handle("/prescriptions", g.Middleware(staff(http.HandlerFunc(p.CreatePrescriptionHandler)))).Methods("POST")
	apiCreate.Handle("/prescriptions", g.Middleware(http.HandlerFunc(p.PrescriptionsHandler))).Methods("GET")
	apiCreate.Handle("/prescriptions/{id}", g.Middleware(http.HandlerFunc(p.PrescriptionByIDHandler))).Methods("GET")

	apiCreate.Handle("/records/signature", g.Middleware(http.HandlerFunc(rec.GenerateSignatureHandler))).Methods("POST")
	apiCreate.Handle("/records", g.Middleware(http.HandlerFunc(rec.CreateRecordHandler))).Methods("POST")
	apiCreate.Handle("/records", g.Middleware(http.HandlerFunc(rec.RecordsHandler))).Methods("GET")
	apiCreate.Handle("/records/{id}", g.Middleware(http.HandlerFunc(rec.RecordByIDHandler))).Methods("GET")
	apiCreate.Handle("/records/{id}", g.Middleware(http.HandlerFunc(rec.DeleteRecordHandler))).Methods("DELETE")

	apiCreate.Handle("/appointments", g.Middleware(http.HandlerFunc(appt.AppointmentsHandler))).Methods("GET")
	apiCreate.Handle("/appointments", g.Middleware(http.HandlerFunc(appt.CreateAppointmentHandler))).Methods("POST")
	apiCreate.Handle("/appointments/{id}/status", g.Middleware(http.HandlerFunc(appt.UpdateAppointmentStatusHandler))).Methods("PATCH")

	apiCreate.Handle("/schedules", g.Middleware(http.HandlerFunc(s.SchedulesHandler))).Methods("GET")
	apiCreate.Handle("/schedules", g.Middleware(admin(http.HandlerFunc(s.CreateScheduleHandler)))).Methods("POST")

	apiCreate.Handle("/admin/dashboard", g.Middleware(admin(http.HandlerFunc(d.DashboardHandler)))).Methods("GET")

	apiCreate.Handle("/ws/appointments", g.Middleware(staff(http.HandlerFunc(a.Hub.HandleAppointmentsWebSocket)))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize(ctx context.Context) error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	if err := client.Ping(ctx); err != nil {
		zap.S().With(err).Error("failed to ping database")
		return err
	}
	zap.S().Info("hospital-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil
}

// DB returns the database the app is connected to
func (a *App) DB() databases.DatabaseHelper {
	return a.dbHelper
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
