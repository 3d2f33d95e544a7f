package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/hospital-api/logging"
	"github.com/linesmerrill/hospital-api/models"
)

const (
	writeWait   = 10 * time.Second
	sendBufSize = 16
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type hubClient struct {
	conn *websocket.Conn
	send chan []byte
}

// AppointmentHub fans appointment status changes out to every connected
// admin page.
type AppointmentHub struct {
	clients map[*hubClient]struct{}
	mutex   sync.Mutex
}

// NewAppointmentHub returns an empty hub
func NewAppointmentHub() *AppointmentHub {
	return &AppointmentHub{clients: make(map[*hubClient]struct{})}
}

// HandleAppointmentsWebSocket upgrades the connection and streams status
// changes until the client goes away.
func (h *AppointmentHub) HandleAppointmentsWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.FromContext(r.Context()).Warnw("websocket upgrade failed", "error", err)
		return
	}
	client := &hubClient{conn: conn, send: make(chan []byte, sendBufSize)}
	h.register(client)

	go client.writePump()
	client.readPump(h)
}

// Broadcast sends an event to every client. Clients that cannot keep up are dropped.
func (h *AppointmentHub) Broadcast(update models.AppointmentStatusUpdate) {
	msg, err := json.Marshal(map[string]interface{}{
		"event": "appointment_status",
		"data":  update,
	})
	if err != nil {
		zap.S().Errorw("failed to marshal appointment event", "error", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// Clients returns the number of connected clients
func (h *AppointmentHub) Clients() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *AppointmentHub) register(c *hubClient) {
	h.mutex.Lock()
	h.clients[c] = struct{}{}
	h.mutex.Unlock()
}

func (h *AppointmentHub) unregister(c *hubClient) {
	h.mutex.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mutex.Unlock()
}

func (c *hubClient) readPump(h *AppointmentHub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (c *hubClient) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
