package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mouldflow/adapters/geometry"
	"mouldflow/core/engine"
	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
	"mouldflow/reports"
)

// Catalog handlers

func (s *Server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"materials": s.catalog.Materials(),
		"count":     s.catalog.MaterialCount(),
	}, http.StatusOK)
}

func (s *Server) handleGetMaterial(w http.ResponseWriter, r *http.Request) {
	m, err := s.catalog.Material(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, m, http.StatusOK)
}

func (s *Server) handleListMachines(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"machines": s.catalog.Machines(),
		"count":    s.catalog.MachineCount(),
	}, http.StatusOK)
}

func (s *Server) handleGetMachine(w http.ResponseWriter, r *http.Request) {
	m, err := s.catalog.Machine(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, m, http.StatusOK)
}

// Project handlers

type createProjectRequest struct {
	Name     string `json:"name"`
	Customer string `json:"customer"`
	Notes    string `json:"notes"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Parsing("decoding project request", err))
		return
	}
	project, err := s.store.CreateProject(r.Context(), req.Name, req.Customer, req.Notes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, project, http.StatusCreated)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]interface{}{"projects": projects, "count": len(projects)}, http.StatusOK)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, project, http.StatusOK)
}

// Part handlers

type createPartRequest struct {
	Name string `json:"name"`

	// Manual dimensions, mm
	LengthMm       float64 `json:"length_mm"`
	WidthMm        float64 `json:"width_mm"`
	HeightMm       float64 `json:"height_mm"`
	AvgThicknessMm float64 `json:"avg_thickness_mm"`
}

func (s *Server) handleCreatePart(w http.ResponseWriter, r *http.Request) {
	var req createPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Parsing("decoding part request", err))
		return
	}

	geo, err := geometry.FromManual(req.LengthMm, req.WidthMm, req.HeightMm, req.AvgThicknessMm)
	if err != nil {
		s.writeError(w, err)
		return
	}

	part, err := s.store.CreatePart(r.Context(), r.PathValue("id"), req.Name, geo)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, part, http.StatusCreated)
}

// handleUploadPart accepts a raw STL body. The part name comes from the
// name query parameter.
func (s *Server) handleUploadPart(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, apperrors.Config("name query parameter is required"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, s.maxUploadBytes+1))
	if err != nil {
		s.writeError(w, apperrors.Parsing("reading upload", err))
		return
	}
	if int64(len(data)) > s.maxUploadBytes {
		s.writeError(w, apperrors.Config("upload exceeds %d byte limit", s.maxUploadBytes))
		return
	}

	geo, err := geometry.FromSTL(data)
	if err != nil {
		s.writeError(w, err)
		return
	}

	part, err := s.store.CreatePart(r.Context(), r.PathValue("id"), name, geo)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, part, http.StatusCreated)
}

func (s *Server) handleListParts(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.GetProject(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	parts, err := s.store.ListParts(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]interface{}{"parts": parts, "count": len(parts)}, http.StatusOK)
}

func (s *Server) handleGetPart(w http.ResponseWriter, r *http.Request) {
	part, err := s.store.GetPart(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, part, http.StatusOK)
}

// Analysis handlers

type runAnalysisRequest struct {
	MaterialID string              `json:"material_id"`
	Config     types.ProcessConfig `json:"config"`
}

func (s *Server) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	var req runAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Parsing("decoding analysis request", err))
		return
	}

	part, err := s.store.GetPart(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	material, err := s.catalog.Material(req.MaterialID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := engine.Run(part.Geometry, material, s.catalog.Machines(), req.Config)
	if err != nil {
		s.writeError(w, err)
		return
	}
	result.PartID = part.ID

	analysis, err := s.store.SaveAnalysis(r.Context(), part.ID, result)
	if err != nil {
		s.writeError(w, err)
		return
	}

	analysesTotal.WithLabelValues(string(result.Feasibility.Status)).Inc()
	s.writeJSON(w, analysis, http.StatusCreated)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.GetPart(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	analyses, err := s.store.ListAnalyses(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]interface{}{"analyses": analyses, "count": len(analyses)}, http.StatusOK)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.store.GetAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, analysis, http.StatusOK)
}

// Report handlers

type generateReportRequest struct {
	View   string `json:"view"`
	Format string `json:"format"`
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Parsing("decoding report request", err))
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	part, err := s.store.GetPart(r.Context(), analysis.PartID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	project, err := s.store.GetProject(r.Context(), part.ProjectID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// The material may have left the catalog since the analysis ran;
	// the report still renders from the stored result.
	material, err := s.catalog.Material(analysis.MaterialID)
	if err != nil {
		material = types.MaterialProperties{ID: analysis.MaterialID, Name: analysis.MaterialID}
	}

	content, err := reports.Render(reports.Input{
		ProjectName: project.Name,
		PartName:    part.Name,
		Material:    material,
		Result:      analysis.Result,
		GeneratedAt: time.Now().UTC(),
	}, reports.View(req.View), reports.Format(req.Format))
	if err != nil {
		s.writeError(w, err)
		return
	}

	report, err := s.store.SaveReport(r.Context(), analysis.ID, req.View, req.Format, content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, report, http.StatusCreated)
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.GetReport(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", reports.Format(report.Format).ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report_"+report.ID+"."+report.Format))
	w.WriteHeader(http.StatusOK)
	w.Write(report.Content)
}
