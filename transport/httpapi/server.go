// Package httpapi provides the REST transport: one POST per inbound turn,
// the engine's reply in the response body. Commands travel as slash-prefixed
// text, matching the chat convention.
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/engine"
)

// MessageRequest is the inbound turn payload.
type MessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse carries the engine's single reply.
type MessageResponse struct {
	Reply string `json:"reply"`
}

// Server is the HTTP server hosting the REST routes and, optionally, the
// WebSocket endpoint.
type Server struct {
	echo   *echo.Echo
	engine *engine.Engine
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(eng *engine.Engine) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{echo: e, engine: eng}

	e.GET("/health", s.handleHealth)
	e.POST("/v1/users/:id/messages", s.handleMessage)

	return s
}

// RegisterWebSocket mounts a WebSocket handler on /ws.
func (s *Server) RegisterWebSocket(handler echo.HandlerFunc) {
	s.echo.GET("/ws", handler)
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

// handleHealth reports liveness and store sizes.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"tasks":    len(s.engine.Tasks().ListAll()),
		"meetings": len(s.engine.Meetings().ListAll()),
	})
}

// handleMessage routes one turn for the user in the path.
func (s *Server) handleMessage(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var out core.Outgoing
	if strings.HasPrefix(req.Text, "/") {
		name := strings.TrimPrefix(strings.TrimSpace(req.Text), "/")
		cmd, known := core.ParseCommand(name)
		if !known {
			cmd = core.Command(name)
		}
		out = s.engine.OnCommand(userID, cmd)
	} else {
		out = s.engine.OnText(userID, req.Text)
	}

	return c.JSON(http.StatusOK, MessageResponse{Reply: out.Text})
}
