// Package ws provides the WebSocket chat transport. Each connection carries
// one user; inbound frames are routed to the engine and every frame gets
// exactly one reply frame back.
package ws

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Ilya-36/planbot/config"
	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/engine"
	"github.com/Ilya-36/planbot/logging"
)

// Inbound is a client frame: a slash command or one dialog turn.
type Inbound struct {
	Type string `json:"type"` // "command" or "text"
	Text string `json:"text"`
}

// Outbound is the reply frame for one inbound frame.
type Outbound struct {
	Type string `json:"type"` // always "reply"
	Text string `json:"text"`
}

// Server handles WebSocket connections.
type Server struct {
	cfg      *config.Config
	engine   *engine.Engine
	logger   logging.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a new WebSocket server.
func NewServer(cfg *config.Config, eng *engine.Engine, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Server{
		cfg:    cfg,
		engine: eng,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Chat frames carry no credentials; origin checks stay out
				// of scope with the rest of auth.
				return true
			},
		},
	}
}

// Handle upgrades the connection and serves it until the client goes away.
// The user identity comes from the "user" query parameter, with a generated
// id as fallback for anonymous sessions.
func (s *Server) Handle(c echo.Context) error {
	userID := c.QueryParam("user")
	if userID == "" {
		userID = uuid.NewString()
	}

	ws, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		s.logger.Error("failed to upgrade websocket user_id=%s: %v", userID, err)
		return err
	}

	conn := &connection{ws: ws}
	ws.SetReadLimit(s.cfg.MaxMessageSize)

	done := make(chan struct{})
	go s.pingLoop(conn, done)
	s.readLoop(conn, userID)
	close(done)

	return nil
}

// readLoop reads frames from the connection and replies in order, one reply
// per frame, preserving the engine's per-user turn serialization.
func (s *Server) readLoop(conn *connection, userID string) {
	defer conn.close()

	_ = conn.ws.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	})

	for {
		_, message, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket error user_id=%s: %v", userID, err)
			}
			return
		}

		out := s.route(userID, message)
		payload, err := json.Marshal(Outbound{Type: "reply", Text: out.Text})
		if err != nil {
			s.logger.Error("failed to marshal reply user_id=%s: %v", userID, err)
			continue
		}
		if err := conn.write(websocket.TextMessage, payload, s.cfg.WriteTimeout); err != nil {
			s.logger.Warn("failed to write reply user_id=%s: %v", userID, err)
			return
		}
	}
}

// route turns one frame into one engine call.
func (s *Server) route(userID string, message []byte) core.Outgoing {
	var in Inbound
	if err := json.Unmarshal(message, &in); err != nil {
		// Plain text frames are tolerated for simple clients.
		in = Inbound{Type: "text", Text: string(message)}
	}

	if in.Type == "command" || strings.HasPrefix(in.Text, "/") {
		name := strings.TrimPrefix(strings.TrimSpace(in.Text), "/")
		cmd, known := core.ParseCommand(name)
		if !known {
			cmd = core.Command(name)
		}
		return s.engine.OnCommand(userID, cmd)
	}
	return s.engine.OnText(userID, in.Text)
}

func (s *Server) pingLoop(conn *connection, done <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.write(websocket.PingMessage, nil, s.cfg.WriteTimeout); err != nil {
				return
			}
		}
	}
}

// connection serializes writes: replies and pings come from different
// goroutines and gorilla allows a single writer at a time.
type connection struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *connection) write(messageType int, payload []byte, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(timeout))
	return c.ws.WriteMessage(messageType, payload)
}

func (c *connection) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.Close()
}
