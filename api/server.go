// Package api - thin HTTP layer over the analysis engine.
// The API is only responsible for input ingestion, engine orchestration
// and output serialization. It never performs calculation logic.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mouldflow/core/catalog"
	"mouldflow/db"
	apperrors "mouldflow/internal/errors"
	"mouldflow/internal/logging"
)

// Server is the API server.
type Server struct {
	mux     *http.ServeMux
	version string
	store   *db.Store
	catalog *catalog.Catalog

	// maxUploadBytes bounds STL uploads.
	maxUploadBytes int64
}

// Option configures a Server.
type Option func(*Server)

// WithMaxUploadBytes overrides the default STL upload limit.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Server) { s.maxUploadBytes = n }
}

// NewServer creates an API server over a store and a catalog snapshot.
func NewServer(version string, store *db.Store, cat *catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		mux:            http.NewServeMux(),
		version:        version,
		store:          store,
		catalog:        cat,
		maxUploadBytes: 50 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	// Catalog reads
	s.mux.HandleFunc("GET /v1/materials", instrument("/v1/materials", s.handleListMaterials))
	s.mux.HandleFunc("GET /v1/materials/{id}", instrument("/v1/materials/{id}", s.handleGetMaterial))
	s.mux.HandleFunc("GET /v1/machines", instrument("/v1/machines", s.handleListMachines))
	s.mux.HandleFunc("GET /v1/machines/{id}", instrument("/v1/machines/{id}", s.handleGetMachine))

	// Projects and parts
	s.mux.HandleFunc("POST /v1/projects", instrument("/v1/projects", s.handleCreateProject))
	s.mux.HandleFunc("GET /v1/projects", instrument("/v1/projects", s.handleListProjects))
	s.mux.HandleFunc("GET /v1/projects/{id}", instrument("/v1/projects/{id}", s.handleGetProject))
	s.mux.HandleFunc("POST /v1/projects/{id}/parts", instrument("/v1/projects/{id}/parts", s.handleCreatePart))
	s.mux.HandleFunc("POST /v1/projects/{id}/parts/upload", instrument("/v1/projects/{id}/parts/upload", s.handleUploadPart))
	s.mux.HandleFunc("GET /v1/projects/{id}/parts", instrument("/v1/projects/{id}/parts", s.handleListParts))
	s.mux.HandleFunc("GET /v1/parts/{id}", instrument("/v1/parts/{id}", s.handleGetPart))

	// Analyses and reports
	s.mux.HandleFunc("POST /v1/parts/{id}/analyses", instrument("/v1/parts/{id}/analyses", s.handleRunAnalysis))
	s.mux.HandleFunc("GET /v1/parts/{id}/analyses", instrument("/v1/parts/{id}/analyses", s.handleListAnalyses))
	s.mux.HandleFunc("GET /v1/analyses/{id}", instrument("/v1/analyses/{id}", s.handleGetAnalysis))
	s.mux.HandleFunc("POST /v1/analyses/{id}/reports", instrument("/v1/analyses/{id}/reports", s.handleGenerateReport))
	s.mux.HandleFunc("GET /v1/reports/{id}/download", instrument("/v1/reports/{id}/download", s.handleDownloadReport))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "mouldflow",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps domain error types to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := string(apperrors.TypeInternal)
	message := err.Error()

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		code = string(appErr.Type)
		message = appErr.Message
		switch appErr.Type {
		case apperrors.TypeGeometry, apperrors.TypeMaterial, apperrors.TypeConfig, apperrors.TypeParsing, apperrors.TypeOverflow, apperrors.TypeReport:
			status = http.StatusBadRequest
		case apperrors.TypeNotFound:
			status = http.StatusNotFound
		}
	}

	if status >= http.StatusInternalServerError {
		logging.Error("request failed", zap.Error(err))
	}

	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server.
func (s *Server) ListenAndServe(addr string) error {
	logging.Info("api server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}
