package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/events"
	"github.com/kahvecikaan/techpulse/internal/service"
)

type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
	Sessions service.AuthService
}

type Message struct {
	EventType string      `json:"event-type"`
	Data      interface{} `json:"data"`
}

// NewHandler streams favorites events to their owner. An empty allowedOrigins accepts any origin.
func NewHandler(
	log hclog.Logger,
	eventBus *events.EventBus[any],
	sessions service.AuthService,
	allowedOrigins []string) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		Log:      log,
		EventBus: eventBus,
		Sessions: sessions,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Browsers cannot set headers on a websocket handshake, so the token rides in the query
	session, err := h.Sessions.Authenticate(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		h.Log.Debug("Rejected WebSocket connection", "error", err)
		http.Error(w, "invalid or expired session", http.StatusUnauthorized)
		return
	}

	// Subscribe before upgrading so nothing published after the handshake is missed
	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	h.Log.Debug("WebSocket connected", "user_id", session.UserID)

	// Create a done channel to signal when the connection is closed
	done := make(chan struct{})

	// Drain client frames so close messages are noticed
	go h.readPump(conn, done)

	for {
		select {
		case event, ok := <-subscriber:
			if !ok {
				// The bus has been closed
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if err := h.send(conn, session, event); err != nil {
				h.Log.Error("Error writing message to WebSocket", "error", err)
				// Connection might be closed, exit the loop
				return
			}
		case <-done:
			h.Log.Debug("WebSocket connection closed by the client", "user_id", session.UserID)
			return
		}
	}
}

// send forwards event when it belongs to the session's user
func (h *Handler) send(conn *websocket.Conn, session domain.Session, event any) error {
	if events.UserID(event) != session.UserID {
		return nil
	}

	var message Message
	switch e := event.(type) {
	case events.FavoriteAdded:
		message = Message{EventType: "favorite_added", Data: e}
	case events.FavoriteRemoved:
		message = Message{EventType: "favorite_removed", Data: e}
	default:
		h.Log.Warn("Unknown event type", "event", e)
		return nil
	}

	payload, err := json.Marshal(message)
	if err != nil {
		h.Log.Error("Error marshalling message", "error", err)
		return nil
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Handler) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.Error("Error reading message", "error", err)
			}
			break
		}
	}
}
