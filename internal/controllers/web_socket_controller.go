package controllers

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"apt_planner/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	clientSendSize = 16
)

// Message types sent on the alert feed.
const (
	AlertMessageSnapshot = "snapshot"
	AlertMessageNew      = "alert"
)

// AlertMessage is one frame on the alert feed. Snapshot frames carry the
// active alerts at connect time; alert frames carry a single new alert.
type AlertMessage struct {
	Type   string                `json:"type"`
	Alerts []models.ServiceAlert `json:"alerts,omitempty"`
	Alert  *models.ServiceAlert  `json:"alert,omitempty"`
}

type alertClient struct {
	conn *websocket.Conn
	send chan AlertMessage
}

// AlertHub fans new service alerts out to every connected websocket client.
type AlertHub struct {
	clients   map[*alertClient]bool
	broadcast chan AlertMessage
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.Mutex
}

// NewAlertHub creates a hub and starts its broadcast loop.
func NewAlertHub() *AlertHub {
	hub := &AlertHub{
		clients:   make(map[*alertClient]bool),
		broadcast: make(chan AlertMessage, 100),
		done:      make(chan struct{}),
	}
	go hub.run()
	return hub
}

func (h *AlertHub) run() {
	for {
		select {
		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// slow consumer
					logrus.WithField("conn_ptr", fmt.Sprintf("%p", client.conn)).Warn("Alert client too slow, dropping connection")
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *AlertHub) register(client *alertClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.done:
		close(client.send)
		return
	default:
	}
	h.clients[client] = true
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", client.conn)).Info("Client registered with AlertHub")
}

func (h *AlertHub) unregister(client *alertClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", client.conn)).Info("Client unregistered from AlertHub")
}

// Clients returns the number of connected clients.
func (h *AlertHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues alert for every connected client. It never blocks; when
// the queue is full the alert is dropped from the live feed.
func (h *AlertHub) Publish(alert models.ServiceAlert) {
	select {
	case h.broadcast <- AlertMessage{Type: AlertMessageNew, Alert: &alert}:
	default:
		logrus.WithField("alert_id", alert.ID).Warn("Alert broadcast channel full, dropping message")
	}
}

// Close disconnects every client and stops the broadcast loop.
func (h *AlertHub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// writePump owns all writes to the connection.
func (c *alertClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).WithField("conn_ptr", fmt.Sprintf("%p", c.conn)).Warn("Failed to send alert to client")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames and returns when the peer goes away.
func (c *alertClient) readPump() {
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Warn("Alert websocket closed unexpectedly")
			}
			return
		}
	}
}

// StreamAlerts upgrades the request to a websocket, sends the active alerts
// and then every alert published while the client stays connected.
func (ac *AlertController) StreamAlerts(c *gin.Context) {
	active, err := ac.alerts.Active(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Failed to load active alerts for websocket")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service alerts"})
		return
	}

	conn, err := ac.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}

	client := &alertClient{conn: conn, send: make(chan AlertMessage, clientSendSize)}
	client.send <- AlertMessage{Type: AlertMessageSnapshot, Alerts: active}
	ac.hub.register(client)

	go client.writePump()
	client.readPump()
	ac.hub.unregister(client)
}
