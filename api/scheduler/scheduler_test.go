package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/databases/mocks"
	"github.com/linesmerrill/hospital-api/models"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, toName, toEmail, subject, plainText, htmlContent string) error {
	return m.Called(ctx, toName, toEmail, subject, plainText, htmlContent).Error(0)
}

func TestSendReminders(t *testing.T) {
	now := time.Date(2024, time.May, 2, 18, 0, 0, 0, time.UTC)
	from := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mei := models.User{ID: primitive.NewObjectID(), Email: "mei@example.com", Name: "Mei Lin", Role: models.RolePatient}
	omar := models.User{ID: primitive.NewObjectID(), Email: "omar@example.com", Name: "Omar Haddad", Role: models.RolePatient}
	ghost := primitive.NewObjectID()

	list := []models.Appointment{
		{ID: primitive.NewObjectID(), PatientID: mei.ID, PatientName: "Mei Lin", DoctorName: "Dr. Emily Carter", ScheduledAt: from.Add(9 * time.Hour), Status: models.StatusConfirmed},
		{ID: primitive.NewObjectID(), PatientID: omar.ID, DoctorName: "Dr. Raj Patel", ScheduledAt: from.Add(10 * time.Hour), Status: models.StatusPending},
		{ID: primitive.NewObjectID(), PatientID: mei.ID, DoctorName: "Dr. Raj Patel", ScheduledAt: from.Add(11 * time.Hour), Status: models.StatusCancelled},
		{ID: primitive.NewObjectID(), PatientID: ghost, DoctorName: "Dr. Raj Patel", ScheduledAt: from.Add(12 * time.Hour), Status: models.StatusPending},
	}

	appts := mocks.NewAppointmentDatabase(t)
	appts.On("GetAppointmentsBetween", mock.Anything, from, to).Return(list, nil)
	users := mocks.NewUserDatabase(t)
	users.On("GetUserByID", mock.Anything, mei.ID.Hex()).Return(&mei, nil)
	users.On("GetUserByID", mock.Anything, omar.ID.Hex()).Return(&omar, nil)
	users.On("GetUserByID", mock.Anything, ghost.Hex()).Return(nil, mongo.ErrNoDocuments)

	mailer := &mockMailer{}
	mailer.On("Send", mock.Anything, "Mei Lin", "mei@example.com", "Appointment reminder: May 3", mock.Anything, mock.Anything).Return(nil)
	mailer.On("Send", mock.Anything, "Omar Haddad", "omar@example.com", "Appointment reminder: May 3", mock.Anything, mock.Anything).Return(errors.New("boom"))

	s := NewScheduler(appts, users, mailer)
	s.Now = func() time.Time { return now }

	sent, err := s.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	mailer.AssertNumberOfCalls(t, "Send", 2)
	mailer.AssertExpectations(t)
}

func TestSendRemindersLoadError(t *testing.T) {
	appts := mocks.NewAppointmentDatabase(t)
	appts.On("GetAppointmentsBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	s := NewScheduler(appts, mocks.NewUserDatabase(t), &mockMailer{})
	sent, err := s.SendReminders(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 0, sent)
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(mocks.NewAppointmentDatabase(t), mocks.NewUserDatabase(t), &mockMailer{})
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}

func TestSendGridMailerNeedsKey(t *testing.T) {
	m := &SendGridMailer{From: "desk@example.com"}
	err := m.Send(context.Background(), "Mei", "mei@example.com", "s", "p", "h")
	assert.EqualError(t, err, "sendgrid api key is not set")
}
