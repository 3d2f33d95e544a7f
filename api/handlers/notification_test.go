package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/hospital-api/models"
)

func TestAppointmentHubBroadcast(t *testing.T) {
	hub := NewAppointmentHub()
	server := httptest.NewServer(http.HandlerFunc(hub.HandleAppointmentsWebSocket))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	update := models.AppointmentStatusUpdate{
		AppointmentID: "663333333333333333333333",
		Status:        models.StatusConfirmed,
		UpdatedAt:     time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC),
	}
	hub.Broadcast(update)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Event string                         `json:"event"`
		Data  models.AppointmentStatusUpdate `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "appointment_status", msg.Event)
	assert.Equal(t, update.AppointmentID, msg.Data.AppointmentID)
	assert.Equal(t, update.Status, msg.Data.Status)
	assert.True(t, update.UpdatedAt.Equal(msg.Data.UpdatedAt))

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestAppointmentHubBroadcastWithoutClients(t *testing.T) {
	hub := NewAppointmentHub()
	assert.NotPanics(t, func() {
		hub.Broadcast(models.AppointmentStatusUpdate{AppointmentID: "x", Status: models.StatusPending})
	})
	assert.Equal(t, 0, hub.Clients())
}

func TestAppointmentHubRejectsPlainRequests(t *testing.T) {
	hub := NewAppointmentHub()
	rr := httptest.NewRecorder()
	hub.HandleAppointmentsWebSocket(rr, httptest.NewRequest("GET", "/api/v1/ws/appointments", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, hub.Clients())
}
