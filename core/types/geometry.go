// Package types defines the core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// GeometrySource records how a geometry summary was produced
type GeometrySource string

const (
	// SourceCAD means the summary was extracted from an uploaded CAD file
	SourceCAD GeometrySource = "cad"

	// SourceManual means the summary was estimated from manual dimensions
	SourceManual GeometrySource = "manual"
)

// IsValid checks if the source is a known provenance
func (s GeometrySource) IsValid() bool {
	return s == SourceCAD || s == SourceManual
}

// Label returns the provenance label shown to users. Manual estimates
// must be visibly distinguishable from CAD-derived numbers downstream.
func (s GeometrySource) Label() string {
	if s == SourceManual {
		return "Estimated – No CAD"
	}
	return "From CAD"
}

// GeometrySummary is the coarse part geometry the engine consumes.
// It is produced once by a geometry provider and never mutated.
type GeometrySummary struct {
	// VolumeCm3 is the part volume in cm³
	VolumeCm3 float64 `json:"volume_cm3"`

	// ProjectedAreaCm2 is the projected area in the clamp direction, cm²
	ProjectedAreaCm2 float64 `json:"projected_area_cm2"`

	// SurfaceAreaCm2 is the total surface area, cm² (informational)
	SurfaceAreaCm2 float64 `json:"surface_area_cm2,omitempty"`

	// Wall thickness statistics, mm (0 < min ≤ avg ≤ max)
	MinThicknessMm float64 `json:"min_thickness_mm"`
	AvgThicknessMm float64 `json:"avg_thickness_mm"`
	MaxThicknessMm float64 `json:"max_thickness_mm"`

	// Bounding box extents, mm, all > 0
	BBoxXMm float64 `json:"bbox_x_mm"`
	BBoxYMm float64 `json:"bbox_y_mm"`
	BBoxZMm float64 `json:"bbox_z_mm"`

	// Source is the provenance flag (cad or manual)
	Source GeometrySource `json:"source"`
}

// GatePoint is an optional gate location in part coordinates, mm
type GatePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
