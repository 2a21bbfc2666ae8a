package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// Project groups the parts quoted for one customer.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Customer  string    `json:"customer,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Part is one geometry under a project.
type Part struct {
	ID        string                `json:"id"`
	ProjectID string                `json:"project_id"`
	Name      string                `json:"name"`
	Geometry  types.GeometrySummary `json:"geometry"`
	CreatedAt time.Time             `json:"created_at"`
}

// Analysis is one stored engine result for a part.
type Analysis struct {
	ID         string                `json:"id"`
	PartID     string                `json:"part_id"`
	MaterialID string                `json:"material_id"`
	Result     *types.AnalysisResult `json:"result"`
	CreatedAt  time.Time             `json:"created_at"`
}

// Report is one rendered document for an analysis.
type Report struct {
	ID         string    `json:"id"`
	AnalysisID string    `json:"analysis_id"`
	View       string    `json:"view"`
	Format     string    `json:"format"`
	Content    []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store wraps the SQL connection with typed accessors. Timestamps are
// assigned here, not by the engine.
type Store struct {
	conn *sql.DB
}

// NewStore creates a store over an opened, migrated database.
func NewStore(conn *sql.DB) *Store {
	return &Store{conn: conn}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// CreateProject inserts a project and assigns its id and timestamp.
func (s *Store) CreateProject(ctx context.Context, name, customer, notes string) (*Project, error) {
	if name == "" {
		return nil, apperrors.Config("project name must not be empty")
	}
	p := &Project{
		ID:        uuid.New().String(),
		Name:      name,
		Customer:  customer,
		Notes:     notes,
		CreatedAt: now(),
	}
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO projects (id, name, customer, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Customer, p.Notes, p.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, apperrors.Storage("insert project", err)
	}
	return p, nil
}

// GetProject fetches a project by id.
func (s *Store) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	var created string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id, name, customer, notes, created_at FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Customer, &p.Notes, &created)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("project", id)
	}
	if err != nil {
		return nil, apperrors.Storage("select project", err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return &p, nil
}

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, customer, notes, created_at FROM projects ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, apperrors.Storage("list projects", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		var p Project
		var created string
		if err := rows.Scan(&p.ID, &p.Name, &p.Customer, &p.Notes, &created); err != nil {
			return nil, apperrors.Storage("scan project", err)
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreatePart stores a geometry summary under a project.
func (s *Store) CreatePart(ctx context.Context, projectID, name string, geo types.GeometrySummary) (*Part, error) {
	if name == "" {
		return nil, apperrors.Config("part name must not be empty")
	}
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	geoJSON, err := json.Marshal(geo)
	if err != nil {
		return nil, apperrors.Storage("encode geometry", err)
	}
	p := &Part{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Geometry:  geo,
		CreatedAt: now(),
	}
	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO parts (id, project_id, name, geometry_json, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.ProjectID, p.Name, string(geoJSON), p.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, apperrors.Storage("insert part", err)
	}
	return p, nil
}

// GetPart fetches a part by id.
func (s *Store) GetPart(ctx context.Context, id string) (*Part, error) {
	var p Part
	var created, geoJSON string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id, project_id, name, geometry_json, created_at FROM parts WHERE id = ?`, id).
		Scan(&p.ID, &p.ProjectID, &p.Name, &geoJSON, &created)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("part", id)
	}
	if err != nil {
		return nil, apperrors.Storage("select part", err)
	}
	if err := json.Unmarshal([]byte(geoJSON), &p.Geometry); err != nil {
		return nil, apperrors.Storage("decode geometry", err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return &p, nil
}

// ListParts returns the parts of a project, newest first.
func (s *Store) ListParts(ctx context.Context, projectID string) ([]Part, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, project_id, name, geometry_json, created_at FROM parts WHERE project_id = ? ORDER BY created_at DESC, id`,
		projectID)
	if err != nil {
		return nil, apperrors.Storage("list parts", err)
	}
	defer rows.Close()

	parts := []Part{}
	for rows.Next() {
		var p Part
		var created, geoJSON string
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &geoJSON, &created); err != nil {
			return nil, apperrors.Storage("scan part", err)
		}
		if err := json.Unmarshal([]byte(geoJSON), &p.Geometry); err != nil {
			return nil, apperrors.Storage("decode geometry", err)
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// SaveAnalysis stores an engine result verbatim under a part.
func (s *Store) SaveAnalysis(ctx context.Context, partID string, result *types.AnalysisResult) (*Analysis, error) {
	if result == nil {
		return nil, apperrors.Config("analysis result must not be nil")
	}
	if _, err := s.GetPart(ctx, partID); err != nil {
		return nil, err
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, apperrors.Storage("encode analysis result", err)
	}
	a := &Analysis{
		ID:         uuid.New().String(),
		PartID:     partID,
		MaterialID: result.MaterialID,
		Result:     result,
		CreatedAt:  now(),
	}
	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO analyses (id, part_id, material_id, result_json, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.PartID, a.MaterialID, string(resultJSON), a.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, apperrors.Storage("insert analysis", err)
	}
	return a, nil
}

// GetAnalysis fetches a stored analysis by id.
func (s *Store) GetAnalysis(ctx context.Context, id string) (*Analysis, error) {
	var a Analysis
	var created, resultJSON string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id, part_id, material_id, result_json, created_at FROM analyses WHERE id = ?`, id).
		Scan(&a.ID, &a.PartID, &a.MaterialID, &resultJSON, &created)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("analysis", id)
	}
	if err != nil {
		return nil, apperrors.Storage("select analysis", err)
	}
	a.Result = &types.AnalysisResult{}
	if err := json.Unmarshal([]byte(resultJSON), a.Result); err != nil {
		return nil, apperrors.Storage("decode analysis result", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return &a, nil
}

// ListAnalyses returns the analyses of a part, newest first.
func (s *Store) ListAnalyses(ctx context.Context, partID string) ([]Analysis, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, part_id, material_id, result_json, created_at FROM analyses WHERE part_id = ? ORDER BY created_at DESC, id`,
		partID)
	if err != nil {
		return nil, apperrors.Storage("list analyses", err)
	}
	defer rows.Close()

	analyses := []Analysis{}
	for rows.Next() {
		var a Analysis
		var created, resultJSON string
		if err := rows.Scan(&a.ID, &a.PartID, &a.MaterialID, &resultJSON, &created); err != nil {
			return nil, apperrors.Storage("scan analysis", err)
		}
		a.Result = &types.AnalysisResult{}
		if err := json.Unmarshal([]byte(resultJSON), a.Result); err != nil {
			return nil, apperrors.Storage("decode analysis result", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// SaveReport stores a rendered report document.
func (s *Store) SaveReport(ctx context.Context, analysisID, view, format string, content []byte) (*Report, error) {
	if len(content) == 0 {
		return nil, apperrors.Config("report content must not be empty")
	}
	if _, err := s.GetAnalysis(ctx, analysisID); err != nil {
		return nil, err
	}

	r := &Report{
		ID:         uuid.New().String(),
		AnalysisID: analysisID,
		View:       view,
		Format:     format,
		Content:    content,
		CreatedAt:  now(),
	}
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO reports (id, analysis_id, view, format, content, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.AnalysisID, r.View, r.Format, r.Content, r.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, apperrors.Storage("insert report", err)
	}
	return r, nil
}

// GetReport fetches a stored report with its content.
func (s *Store) GetReport(ctx context.Context, id string) (*Report, error) {
	var r Report
	var created string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id, analysis_id, view, format, content, created_at FROM reports WHERE id = ?`, id).
		Scan(&r.ID, &r.AnalysisID, &r.View, &r.Format, &r.Content, &created)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("report", id)
	}
	if err != nil {
		return nil, apperrors.Storage("select report", err)
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return &r, nil
}
