// Package reports renders stored analysis results as HTML, PDF and XLSX
// documents. Rendering only selects and formats fields from one
// AnalysisResult; nothing is recomputed.
package reports

import (
	"time"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// View selects which messages and which level of detail a report shows.
type View string

const (
	// ViewDesigner shows full technical detail and designer messages.
	ViewDesigner View = "designer"

	// ViewCustomer shows the summary and customer-facing messages.
	ViewCustomer View = "customer"
)

// IsValid checks if the view is known.
func (v View) IsValid() bool {
	return v == ViewDesigner || v == ViewCustomer
}

// Format is the output document format.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// IsValid checks if the format is known.
func (f Format) IsValid() bool {
	switch f {
	case FormatHTML, FormatPDF, FormatXLSX:
		return true
	default:
		return false
	}
}

// ContentType returns the MIME type for downloads.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/html; charset=utf-8"
	}
}

// Input bundles everything one report needs.
type Input struct {
	ProjectName string
	PartName    string
	Material    types.MaterialProperties
	Result      *types.AnalysisResult
	GeneratedAt time.Time
}

// Render produces the report document in the requested view and format.
func Render(in Input, view View, format Format) ([]byte, error) {
	if in.Result == nil {
		return nil, apperrors.Newf(apperrors.TypeReport, "analysis result must not be nil")
	}
	if !view.IsValid() {
		return nil, apperrors.Newf(apperrors.TypeReport, "unknown report view %q", view)
	}

	switch format {
	case FormatHTML:
		return renderHTML(in, view)
	case FormatPDF:
		return renderPDF(in, view)
	case FormatXLSX:
		return renderXLSX(in, view)
	default:
		return nil, apperrors.Newf(apperrors.TypeReport, "unknown report format %q", format)
	}
}

// warningMessage picks the message matching the view.
func warningMessage(w types.Warning, view View) string {
	if view == ViewCustomer {
		return w.CustomerMessage
	}
	return w.DesignerMessage
}

// statusColor maps a feasibility status to the accent color used across
// all three formats.
func statusColor(s types.FeasibilityStatus) string {
	switch s {
	case types.StatusFeasible:
		return "#22c55e"
	case types.StatusBorderline:
		return "#f59e0b"
	case types.StatusNotRecommended:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}

func severityColor(s types.Severity) string {
	switch s {
	case types.SeverityLow:
		return "#3b82f6"
	case types.SeverityMedium:
		return "#f59e0b"
	case types.SeverityHigh:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}
