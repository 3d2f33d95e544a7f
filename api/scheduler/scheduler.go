package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/linesmerrill/hospital-api/config"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
	templates "github.com/linesmerrill/hospital-api/templates/html"
)

// ReminderSpec runs the reminder job every day at 18:00 UTC
const ReminderSpec = "0 18 * * *"

// Mailer sends a single email
type Mailer interface {
	Send(ctx context.Context, toName, toEmail, subject, plainText, htmlContent string) error
}

// SendGridMailer delivers mail through SendGrid
type SendGridMailer struct {
	APIKey   string
	From     string
	FromName string
}

// NewSendGridMailer builds a mailer from the project config
func NewSendGridMailer(conf config.Config) *SendGridMailer {
	return &SendGridMailer{
		APIKey:   conf.SendGridAPIKey,
		From:     conf.MailFrom,
		FromName: conf.MailFromName,
	}
}

// Send delivers one email and treats any 4xx/5xx answer as a failure
func (m *SendGridMailer) Send(ctx context.Context, toName, toEmail, subject, plainText, htmlContent string) error {
	if m.APIKey == "" {
		return fmt.Errorf("sendgrid api key is not set")
	}
	from := mail.NewEmail(m.FromName, m.From)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(m.APIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", toEmail)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}

// Scheduler handles periodic background jobs for appointment reminders
type Scheduler struct {
	cron         *cron.Cron
	Appointments databases.AppointmentDatabase
	Users        databases.UserDatabase
	Mailer       Mailer
	Now          func() time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(appointments databases.AppointmentDatabase, users databases.UserDatabase, mailer Mailer) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithLocation(time.UTC)),
		Appointments: appointments,
		Users:        users,
		Mailer:       mailer,
		Now:          time.Now,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(ReminderSpec, s.runReminders)
	if err != nil {
		return fmt.Errorf("failed to register reminder job: %w", err)
	}
	s.cron.Start()
	zap.S().Info("appointment reminder scheduler started")
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("appointment reminder scheduler stopped")
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent, err := s.SendReminders(ctx)
	if err != nil {
		zap.S().Errorw("reminder job failed", "error", err, "sent", sent)
		return
	}
	zap.S().Infow("reminder job complete", "sent", sent)
}

// SendReminders emails every patient with a pending or confirmed appointment
// tomorrow (UTC). It returns how many emails went out. A failed email is
// logged and skipped.
func (s *Scheduler) SendReminders(ctx context.Context) (int, error) {
	now := s.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	list, err := s.Appointments.GetAppointmentsBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to load appointments: %w", err)
	}

	sent := 0
	for _, appt := range list {
		if appt.Status == models.StatusCancelled {
			continue
		}
		patient, err := s.Users.GetUserByID(ctx, appt.PatientID.Hex())
		if err != nil {
			zap.S().Warnw("skipping reminder, patient not found",
				"appointmentId", appt.ID.Hex(),
				"error", err)
			continue
		}
		name := appt.PatientName
		if name == "" {
			name = patient.Name
		}
		subject, htmlContent, plainText := templates.RenderAppointmentReminder(templates.Reminder{
			PatientName: name,
			DoctorName:  appt.DoctorName,
			Department:  appt.Department,
			ScheduledAt: appt.ScheduledAt,
			Status:      appt.Status,
		})
		if err := s.Mailer.Send(ctx, name, patient.Email, subject, plainText, htmlContent); err != nil {
			zap.S().Errorw("failed to send reminder",
				"appointmentId", appt.ID.Hex(),
				"to", patient.Email,
				"error", err)
			continue
		}
		sent++
	}
	return sent, nil
}
