// Package server exposes the calculation engine over HTTP: the thin form
// layer the engine is designed behind. Handlers validate a snapshot, run the
// engine on clean input, and localize violation tags for display; no handler
// holds state between requests.
package server

import (
	"io"
	"log"
	"net/http"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/nirre55/trading-simulator/internal/config"
	"github.com/nirre55/trading-simulator/internal/domain"
	"github.com/nirre55/trading-simulator/internal/engine"
	"github.com/nirre55/trading-simulator/internal/i18n"
	"github.com/nirre55/trading-simulator/internal/idhash"
	"github.com/nirre55/trading-simulator/internal/observability"
)

// SimulateRequest is one parameter snapshot from a client. Lang overrides the
// Accept-Language negotiation when set.
type SimulateRequest struct {
	Params  domain.InputParameters `json:"params"`
	Variant domain.Variant         `json:"variant"`
	Lang    string                 `json:"lang,omitempty"`
}

// FieldError carries the machine tag plus the resolved display message.
type FieldError struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// SimulateResponse is the envelope for validate, simulate and stream replies.
// Errors and Result are mutually exclusive.
type SimulateResponse struct {
	SnapshotID string                    `json:"snapshotId"`
	Errors     map[string]FieldError     `json:"errors,omitempty"`
	Result     *domain.CalculationResult `json:"result,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server wires the engine to the HTTP surface.
type Server struct {
	cfg      config.Config
	logger   *log.Logger
	metrics  *observability.Metrics
	upgrader websocket.Upgrader
}

// New creates a Server. logger and metrics must be non-nil.
func New(cfg config.Config, logger *log.Logger, metrics *observability.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Routes registers all handlers on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/validate", s.handleValidate)
	mux.HandleFunc("/api/v1/simulate", s.handleSimulate)
	mux.HandleFunc("/api/v1/stream", s.handleStream)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", observability.Handler())
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"status":"ok"}`)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	locale := s.locale(r, req.Lang)
	errs := engine.Validate(req.Params, req.Variant)
	s.writeJSON(w, http.StatusOK, SimulateResponse{
		SnapshotID: idhash.ComputeSnapshotID(req.Params, req.Variant),
		Errors:     s.resolveErrors(locale, errs),
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	resp, valid := s.evaluate(req, s.locale(r, req.Lang))
	if !valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// evaluate runs the validate-then-calculate flow shared by the simulate
// handler and the stream loop. It never computes on an invalid snapshot.
func (s *Server) evaluate(req SimulateRequest, locale string) (SimulateResponse, bool) {
	snapshotID := idhash.ComputeSnapshotID(req.Params, req.Variant)

	errs := engine.Validate(req.Params, req.Variant)
	if len(errs) > 0 {
		s.metrics.ValidationFailures.WithLabelValues(string(req.Variant)).Inc()
		return SimulateResponse{
			SnapshotID: snapshotID,
			Errors:     s.resolveErrors(locale, errs),
		}, false
	}

	start := time.Now()
	result := engine.Calculate(req.Params, req.Variant)
	s.metrics.CalculationSeconds.Observe(time.Since(start).Seconds())
	s.metrics.SimulationsTotal.WithLabelValues(string(req.Variant)).Inc()

	return SimulateResponse{
		SnapshotID: snapshotID,
		Result:     &result,
	}, true
}

func (s *Server) resolveErrors(locale string, errs engine.ErrorMap) map[string]FieldError {
	if len(errs) == 0 {
		return nil
	}
	resolved := make(map[string]FieldError, len(errs))
	for key, tag := range errs {
		resolved[key] = FieldError{
			Tag:     tag,
			Message: i18n.Resolve(locale, tag),
		}
	}
	return resolved
}

// locale picks the display locale: explicit request field, then
// Accept-Language, then the configured default.
func (s *Server) locale(r *http.Request, lang string) string {
	if lang != "" {
		return i18n.Match(lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.Match(accept)
	}
	return s.cfg.Locale.Default
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (SimulateRequest, bool) {
	var req SimulateRequest
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return req, false
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.metrics.BadRequests.Inc()
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "read body: " + err.Error()})
		return req, false
	}
	if err := json.Unmarshal(body, &req); err != nil {
		s.metrics.BadRequests.Inc()
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "parse request: " + err.Error()})
		return req, false
	}
	if !req.Variant.Valid() {
		s.metrics.BadRequests.Inc()
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown variant"})
		return req, false
	}
	return req, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.Printf("encode response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
