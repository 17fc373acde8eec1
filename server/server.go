// SPDX-License-Identifier: MIT

// Package server exposes elimination reports over HTTP.
//
//	GET /healthz
//	GET /metrics
//	GET /divisions
//	GET /divisions/{division}/teams
//	GET /divisions/{division}/teams/{team}
//	GET /divisions/{division}/teams/{team}/certificate
//
// Unknown divisions and teams answer 404; unknown teams include fuzzy
// suggestions in the body.
package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pennant/division"
)

// Server routes HTTP requests to a Source.
type Server struct {
	router   *mux.Router
	src      Source
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
	debug    bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDebug includes internal error detail in 500 responses.
func WithDebug(on bool) Option {
	return func(s *Server) { s.debug = on }
}

// New builds a Server over src with its own metrics registry.
func New(src Source, opts ...Option) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		src:      src,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.Use(s.metrics.instrument)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router.HandleFunc("/divisions", s.handleDivisions).Methods(http.MethodGet)
	s.router.HandleFunc("/divisions/{division}/teams", s.handleTeams).Methods(http.MethodGet)
	s.router.HandleFunc("/divisions/{division}/teams/{team}", s.handleTeam).Methods(http.MethodGet)
	s.router.HandleFunc("/divisions/{division}/teams/{team}/certificate", s.handleCertificate).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry exposes the server's metrics registry.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDivisions(w http.ResponseWriter, r *http.Request) {
	names, err := s.src.Divisions(r.Context())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"divisions": names})
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["division"]
	rep, err := s.src.Report(r.Context(), name)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.metrics.reportsServed.WithLabelValues(name).Inc()
	s.writeJSON(w, http.StatusOK, teamsResponse{Division: name, Teams: rep.Standings()})
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rep, err := s.src.Report(r.Context(), vars["division"])
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	st, err := rep.Standing(vars["team"])
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleCertificate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rep, err := s.src.Report(r.Context(), vars["division"])
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	v, err := rep.Verdict(vars["team"])
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, certificateResponse{
		Team:        v.Team,
		Eliminated:  v.Eliminated,
		Trivial:     v.Trivial,
		Certificate: v.Certificate,
	})
}

type teamsResponse struct {
	Division string `json:"division"`
	Teams    any    `json:"teams"`
}

type certificateResponse struct {
	Team        string   `json:"team"`
	Eliminated  bool     `json:"eliminated"`
	Trivial     bool     `json:"trivial,omitempty"`
	Certificate []string `json:"certificate,omitempty"`
}

type errorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// writeFailure maps domain errors to status codes.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var unknown *division.UnknownTeamError
	switch {
	case errors.As(err, &unknown):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: unknown.Error(), Suggestions: unknown.Suggestions})
	case errors.Is(err, ErrDivisionNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.log.Error("server: request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		msg := "internal error"
		if s.debug {
			msg = err.Error()
		}
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msg})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("server: encode response", "err", err)
	}
}
