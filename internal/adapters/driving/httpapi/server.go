// Package httpapi exposes the calculator over HTTP: GET /sun for JSON,
// GET /sun.ics for an iCalendar feed and GET /healthz for probes.
package httpapi

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/helio-labs/heliotime/internal/core/ports/driving"
)

// Server wires the driving ports to HTTP handlers.
type Server struct {
	mu        sync.RWMutex
	sun       driving.SunCalculator
	locations driving.LocationResolver

	// checker is nil unless the development cross-check is configured.
	checker driving.CrossChecker

	log zerolog.Logger
}

// NewServer creates a new HTTP API server. checker may be nil.
func NewServer(sun driving.SunCalculator, locations driving.LocationResolver,
	checker driving.CrossChecker, log zerolog.Logger) *Server {
	return &Server{
		sun:       sun,
		locations: locations,
		checker:   checker,
		log:       log,
	}
}

// Swap replaces the backing services. New requests use the new services;
// requests already in flight finish on the old ones.
func (s *Server) Swap(sun driving.SunCalculator, locations driving.LocationResolver,
	checker driving.CrossChecker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sun = sun
	s.locations = locations
	s.checker = checker
}

func (s *Server) services() (driving.SunCalculator, driving.LocationResolver, driving.CrossChecker) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sun, s.locations, s.checker
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sun", s.handleSun)
	mux.HandleFunc("GET /sun.ics", s.handleICS)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return s.withRequestID(s.withCORS(s.withAccessLog(mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
