package templates

import (
	"fmt"
	"time"

	"github.com/linesmerrill/hospital-api/models"
)

// Reminder holds what goes into an appointment reminder email
type Reminder struct {
	PatientName string
	DoctorName  string
	Department  string
	ScheduledAt time.Time
	Status      string
}

// RenderAppointmentReminder returns the subject, HTML and plain text bodies
// for a reminder about an upcoming appointment.
func RenderAppointmentReminder(r Reminder) (subject, htmlContent, plainText string) {
	when := r.ScheduledAt.UTC().Format("Monday, January 2 at 15:04 MST")
	subject = "Appointment reminder: " + r.ScheduledAt.UTC().Format("Jan 2")

	plainText = fmt.Sprintf("Hello %s,\n\nThis is a reminder of your appointment with %s", r.PatientName, r.DoctorName)
	if r.Department != "" {
		plainText += fmt.Sprintf(" (%s)", r.Department)
	}
	plainText += fmt.Sprintf(" on %s.\n", when)
	if r.Status == models.StatusPending {
		plainText += "\nYour appointment has not been confirmed yet. We will let you know as soon as it is.\n"
	}
	plainText += "\nIf you cannot make it, please cancel so the slot can go to someone else."

	return subject, RenderGenericEmail(subject, plainText), plainText
}
