// Package http exposes the cipher engine over a small JSON API.
//
// The API is stateless: every convert request carries its full settings
// line, and the server builds a fresh machine for it. That keeps requests
// independent and safe to serve concurrently, since no rotor state is
// shared between them.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/rotary/internal/config"
	"github.com/aretw0/rotary/internal/runtime"
	"github.com/aretw0/rotary/pkg/domain"
	"github.com/aretw0/rotary/pkg/ports"
)

// Server handles the HTTP surface around a catalog loader.
type Server struct {
	Loader  ports.CatalogLoader
	Metrics *Metrics
	Logger  *slog.Logger
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(loader ports.CatalogLoader, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		Loader:  loader,
		Metrics: NewMetrics(),
		Logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.Health)
	r.Get("/catalog", s.GetCatalog)
	r.Post("/convert", s.Convert)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))
	return r
}

// ConvertRequest is the POST /convert body.
type ConvertRequest struct {
	// Settings is a full settings line, e.g. "* B Beta III IV I AXLE (HQ)".
	Settings string `json:"settings"`
	// Message is the text to convert; whitespace is stripped first.
	Message string `json:"message"`
	// Textbook selects the textbook stepping rule for this request.
	Textbook bool `json:"textbook,omitempty"`
}

// ConvertResponse is the POST /convert reply.
type ConvertResponse struct {
	// Output is the converted message, grouped five symbols per word.
	Output string `json:"output"`
}

// Convert handles POST /convert.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	var body ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Convert: invalid request body", "error", err)
		return
	}

	out, err := s.convert(r.Context(), body)
	if err != nil {
		s.Metrics.ErrorsTotal.Inc()
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		s.Logger.Warn("Convert failed", "error", err)
		return
	}

	s.Metrics.ConversionsTotal.Inc()
	s.Metrics.CharactersTotal.Add(float64(len(strings.Join(strings.Fields(body.Message), ""))))

	writeJSON(w, http.StatusOK, ConvertResponse{Output: out})
}

func (s *Server) convert(ctx context.Context, body ConvertRequest) (string, error) {
	if !config.IsSettingsLine(body.Settings) {
		return "", fmt.Errorf("settings must be a settings line starting with %q", "*")
	}

	// Fresh catalog and machine per request; see package comment.
	cat, err := s.Loader.LoadCatalog(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog: %w", err)
	}

	opts := []runtime.Option{runtime.WithLogger(s.Logger)}
	if body.Textbook {
		opts = append(opts, runtime.WithTextbookStepping())
	}
	sess, err := runtime.New(cat, opts...)
	if err != nil {
		return "", err
	}

	set, err := config.Parse(body.Settings, cat.Slots)
	if err != nil {
		return "", err
	}
	if err := sess.Configure(set); err != nil {
		return "", err
	}
	return sess.ConvertLine(body.Message)
}

// CatalogResponse is the GET /catalog reply.
type CatalogResponse struct {
	Alphabet string             `json:"alphabet"`
	Slots    int                `json:"slots"`
	Pawls    int                `json:"pawls"`
	Rotors   []CatalogRotorInfo `json:"rotors"`
}

// CatalogRotorInfo describes one rotor definition.
type CatalogRotorInfo struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Rotates  bool   `json:"rotates"`
	Reflects bool   `json:"reflects"`
}

// GetCatalog handles GET /catalog.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := s.Loader.LoadCatalog(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Catalog error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Catalog load failed", "error", err)
		return
	}

	resp := CatalogResponse{
		Alphabet: cat.Alphabet.String(),
		Slots:    cat.Slots,
		Pawls:    cat.Pawls,
	}
	for _, rotor := range cat.Rotors {
		resp.Rotors = append(resp.Rotors, CatalogRotorInfo{
			Name:     rotor.Name(),
			Role:     string(roleOf(rotor)),
			Rotates:  rotor.Rotates(),
			Reflects: rotor.Reflects(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func roleOf(r domain.Rotor) domain.Role {
	switch {
	case r.Reflects():
		return domain.RoleReflector
	case r.Rotates():
		return domain.RoleMoving
	default:
		return domain.RoleFixed
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
