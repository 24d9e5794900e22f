package formapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/dynform"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

type config struct {
	logger      *slog.Logger
	timeout     time.Duration
	maxBodySize int64
}

// Option configures the router.
type Option func(*config)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout bounds a single validation run, async validators included.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxBodySize limits the accepted request body size in bytes.
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Router creates the form validation router.
func Router(svc *dynform.Service, opts ...Option) chi.Router {
	cfg := &config{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout:     5 * time.Second,
		maxBodySize: 1 << 20,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h := &handler{svc: svc, cfg: cfg, parser: dynform.NewJSONParser()}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Route("/v1/forms", func(forms chi.Router) {
		forms.Post("/validate", h.validate)
	})

	return r
}

type handler struct {
	svc    *dynform.Service
	cfg    *config
	parser *dynform.JSONParser
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.cfg.logger.With(slog.String("request_id", middleware.GetReqID(ctx)))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.maxBodySize))
	if err != nil {
		if maxErr := new(http.MaxBytesError); errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		log.DebugContext(ctx, "failed to read request body", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}

	model, err := h.parser.Parse(ctx, body)
	if err != nil {
		log.DebugContext(ctx, "invalid form definition", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.cfg.timeout)
	defer cancel()

	res, err := h.svc.Check(ctx, model)
	switch {
	case err == nil:
	case errors.Is(err, dynform.ErrValidatorNotFound), errors.Is(err, dynform.ErrInvalidValidatorArgs):
		log.InfoContext(ctx, "form configuration rejected", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, async.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(ctx, "form validation timed out", logger.Error(err))
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "validation timed out"})
		return
	default:
		log.ErrorContext(ctx, "form validation failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "validation failed"})
		return
	}

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
