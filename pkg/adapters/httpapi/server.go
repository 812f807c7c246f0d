// Package httpapi exposes the dialog router over HTTP: a webhook ingress for
// inbound events and read-only introspection of session snapshots.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Server wires the router, its reply buffer, and the snapshot store into an
// HTTP handler.
type Server struct {
	dispatcher ports.Handler[dialog.Outcome]
	replies    *ReplyBuffer
	snapshots  ports.SnapshotStore
	logger     *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithSnapshots enables the /sessions introspection endpoints.
func WithSnapshots(store ports.SnapshotStore) Option {
	return func(s *Server) { s.snapshots = store }
}

// NewServer creates a Server. The replies buffer must be the same Channel
// the router was constructed with, so the server can drain what the router
// produced.
func NewServer(dispatcher ports.Handler[dialog.Outcome], replies *ReplyBuffer, opts ...Option) *Server {
	s := &Server{
		dispatcher: dispatcher,
		replies:    replies,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/events", s.postEvent)
	r.Get("/sessions", s.listSessions)
	r.Get("/sessions/{userID}", s.getSession)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// eventRequest is the accepted webhook shape. Unknown fields are ignored so
// transport-specific envelopes can be posted as-is.
type eventRequest struct {
	UserID     string             `mapstructure:"user_id"`
	Text       string             `mapstructure:"text"`
	Attachment *domain.Attachment `mapstructure:"attachment"`
}

type eventResponse struct {
	Handled       bool              `json:"handled"`
	CorrelationID string            `json:"correlation_id"`
	Replies       []OutboundMessage `json:"replies,omitempty"`
}

func (s *Server) postEvent(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var req eventRequest
	if err := mapstructure.Decode(raw, &req); err != nil {
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	ev := domain.Message{
		User:          req.UserID,
		Body:          req.Text,
		Media:         req.Attachment,
		CorrelationID: uuid.NewString(),
	}
	s.logger.Debug("event received",
		"user_id", ev.User,
		"correlation_id", ev.CorrelationID,
	)

	resp := eventResponse{CorrelationID: ev.CorrelationID}
	if s.dispatcher.Matches(ev) {
		if _, err := s.dispatcher.Handle(r.Context(), ev); err != nil {
			s.logger.Error("event handling failed",
				"user_id", ev.User,
				"correlation_id", ev.CorrelationID,
				"err", err,
			)
			http.Error(w, "event handling failed", http.StatusInternalServerError)
			return
		}
		resp.Handled = true
		resp.Replies = s.replies.Drain(ev.User)
	}

	s.writeJSON(w, resp)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		http.Error(w, "introspection disabled", http.StatusNotFound)
		return
	}
	snaps, err := s.snapshots.List(r.Context())
	if err != nil {
		s.logger.Error("snapshot listing failed", "err", err)
		http.Error(w, "snapshot listing failed", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, snaps)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		http.Error(w, "introspection disabled", http.StatusNotFound)
		return
	}
	userID := chi.URLParam(r, "userID")
	snap, err := s.snapshots.Load(r.Context(), userID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("snapshot load failed", "user_id", userID, "err", err)
		http.Error(w, "snapshot load failed", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, snap)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", "err", err)
	}
}
