package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lorenzotomasdiez/contrarian/internal/conversation"
)

// Server wires the HTTP transport over the conversation manager.
type Server struct {
	manager *conversation.Manager
	log     zerolog.Logger
	metrics *Metrics
	redis   *redis.Client
	timeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics enables the /metrics endpoint and request instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithRedisProbe adds a redis ping to the readiness check.
func WithRedisProbe(client *redis.Client) Option {
	return func(s *Server) { s.redis = client }
}

// WithRequestTimeout caps per-request handling time.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

func New(manager *conversation.Manager, log zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		manager: manager,
		log:     log,
		timeout: 29 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(s.log), Timeout(s.timeout))
	if s.metrics != nil {
		r.Use(s.metrics.Instrument())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))
	}

	r.GET("/healthz", s.handleHealth)
	r.GET("/readyz", s.handleReady)
	r.POST("/api/v1/chat", s.handleChat)
	return r
}

type chatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

type chatResponse struct {
	ConversationID string              `json:"conversation_id"`
	Reply          string              `json:"reply"`
	Transcript     []conversation.Turn `json:"transcript"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{
		Code:    code,
		Message: message,
		TraceID: c.GetString(requestIDKey),
	}})
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_error", "malformed request body")
		return
	}

	id, transcript, err := s.manager.HandleTurn(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		s.writeTurnError(c, err)
		return
	}
	if s.metrics != nil {
		s.metrics.turnsTotal.Inc()
	}

	reply := ""
	if n := len(transcript); n > 0 {
		reply = transcript[n-1].Message
	}
	c.JSON(http.StatusOK, chatResponse{
		ConversationID: id,
		Reply:          reply,
		Transcript:     transcript,
	})
}

func (s *Server) writeTurnError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, conversation.ErrValidation):
		writeError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, conversation.ErrNotFound):
		writeError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "timeout", "request timed out")
	case errors.Is(err, conversation.ErrStoreUnavailable):
		writeError(c, http.StatusServiceUnavailable, "internal_error", "storage unavailable")
	case errors.Is(err, conversation.ErrConflict):
		writeError(c, http.StatusConflict, "internal_error", "concurrent update, retry")
	default:
		s.log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("turn failed")
		writeError(c, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleReady reports degraded when the backing redis is unreachable.
// A memory-backed deployment has no external dependency and is always
// ready.
func (s *Server) handleReady(c *gin.Context) {
	if s.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.redis.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
