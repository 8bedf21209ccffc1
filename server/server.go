// Package server exposes the assistant over HTTP: POST /chat for a
// conversation turn and GET /healthz for liveness. Each session id maps to
// its own Assistant instance; turns within a session are serialized.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daybrief-ai/daybrief"
	"github.com/daybrief-ai/daybrief/logging"
	"github.com/daybrief-ai/daybrief/session"
)

// ChatRequest is the /chat request body.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	// Session selects the conversation; empty starts a new one.
	Session string `json:"session"`
}

// ChatResponse is the /chat response body.
type ChatResponse struct {
	Reply   string `json:"reply"`
	Session string `json:"session"`
}

// Options configures the Server.
type Options struct {
	Addr   string
	Logger logging.Logger
	// TurnTimeout bounds one conversation turn end to end. Zero disables it.
	TurnTimeout time.Duration
}

// Server is the HTTP adapter around a per-session Assistant registry.
type Server struct {
	engine   *gin.Engine
	sessions *session.InMemoryStore[*daybrief.Assistant]
	opts     Options
	logger   logging.Logger
}

// New constructs a Server. factory builds one Assistant per new session.
func New(factory session.Factory[*daybrief.Assistant], optFns ...func(o *Options)) *Server {
	opts := Options{
		Addr:   ":5000",
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		engine:   gin.New(),
		sessions: session.NewInMemoryStore(factory),
		opts:     opts,
		logger:   opts.Logger,
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.POST("/chat", s.handleChat)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: provide a 'message' field"})
		return
	}

	entry, err := s.sessions.Get(req.Session)
	if err != nil {
		s.logger.Error("server.chat.session_failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not initialize session"})
		return
	}

	ctx := c.Request.Context()
	if s.opts.TurnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.TurnTimeout)
		defer cancel()
	}

	var reply string
	entry.Do(func(a *daybrief.Assistant) {
		reply = a.Process(ctx, req.Message)
	})

	s.logger.Info("server.chat.turn", "session", entry.ID, "message_len", len(req.Message))
	c.JSON(http.StatusOK, ChatResponse{Reply: reply, Session: entry.ID})
}

// Handler exposes the underlying http.Handler (used by tests).
func (s *Server) Handler() http.Handler { return s.engine }

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("server.listen", "addr", s.opts.Addr)
	return s.engine.Run(s.opts.Addr)
}
