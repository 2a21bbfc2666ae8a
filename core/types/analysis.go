package types

// Severity classifies how serious a warning is
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Penalty is the feasibility score deduction for this severity.
// The feasibility score is a pure fold over warning severities, so the
// stored score can always be re-derived from the warning list.
func (s Severity) Penalty() int {
	switch s {
	case SeverityLow:
		return 5
	case SeverityMedium:
		return 15
	case SeverityHigh:
		return 30
	default:
		return 5
	}
}

// WarningKind identifies a feasibility rule
type WarningKind string

const (
	WarnThickSection        WarningKind = "thick_section"
	WarnVeryThickSection    WarningKind = "very_thick_section"
	WarnThinSection         WarningKind = "thin_section"
	WarnHighFlowRatio       WarningKind = "high_flow_ratio"
	WarnBorderlineFlowRatio WarningKind = "borderline_flow_ratio"
	WarnLargeProjectedArea  WarningKind = "large_projected_area"
	WarnHighTonnage         WarningKind = "high_tonnage"
	WarnNoSuitableMachine   WarningKind = "no_suitable_machine"
)

// Warning is one triggered feasibility rule, carrying both the technical
// message for designers and the simplified message for customers.
type Warning struct {
	Kind            WarningKind `json:"kind"`
	Severity        Severity    `json:"severity"`
	DesignerMessage string      `json:"designer_message"`
	CustomerMessage string      `json:"customer_message"`
	Remediation     string      `json:"remediation,omitempty"`
}

// FeasibilityStatus is the overall judgment derived from the score
type FeasibilityStatus string

const (
	StatusFeasible       FeasibilityStatus = "feasible"
	StatusBorderline     FeasibilityStatus = "borderline"
	StatusNotRecommended FeasibilityStatus = "not_recommended"
)

// Feasibility couples the 0–100 score with its status band
type Feasibility struct {
	Status FeasibilityStatus `json:"status"`
	Score  int               `json:"score"`
}

// TonnageEstimate is the clamp tonnage triple, metric tons
type TonnageEstimate struct {
	MinimumT      float64 `json:"minimum_t"`
	RecommendedT  float64 `json:"recommended_t"`
	ConservativeT float64 `json:"conservative_t"`
}

// CycleBreakdown reports every cycle component, seconds. The breakdown,
// not just the total, is part of the contract: TotalS is the exact sum
// of the four components.
type CycleBreakdown struct {
	FillS     float64 `json:"fill_s"`
	PackS     float64 `json:"pack_s"`
	CoolingS  float64 `json:"cooling_s"`
	OverheadS float64 `json:"overhead_s"`
	TotalS    float64 `json:"total_s"`
}

// Suitability classifies how well a machine fits the required tonnage
type Suitability string

const (
	SuitabilityIdeal      Suitability = "ideal"
	SuitabilityAcceptable Suitability = "acceptable"
	SuitabilityBorderline Suitability = "borderline"
)

// rank orders suitability bands, best first
func (s Suitability) Rank() int {
	switch s {
	case SuitabilityIdeal:
		return 0
	case SuitabilityAcceptable:
		return 1
	case SuitabilityBorderline:
		return 2
	default:
		return 3
	}
}

// MachineRecommendation is one ranked catalog machine
type MachineRecommendation struct {
	Machine     MachineSpec `json:"machine"`
	Suitability Suitability `json:"suitability"`
	Notes       []string    `json:"notes,omitempty"`
}

// AnalysisResult is the complete, immutable output of one engine run.
// Every derived field is a deterministic pure function of the inputs;
// re-running with different inputs produces a new result.
type AnalysisResult struct {
	// Echoed inputs
	PartID     string        `json:"part_id,omitempty"`
	MaterialID string        `json:"material_id"`
	Config     ProcessConfig `json:"config"`

	// Provenance of the geometry the result was computed from
	GeometrySource GeometrySource `json:"geometry_source"`

	// Gate and runner sizing, mm
	GateDiameterMm   float64 `json:"gate_diameter_mm"`
	RunnerDiameterMm float64 `json:"runner_diameter_mm"`

	// Flow path
	FlowLengthMm float64 `json:"flow_length_mm"`
	FlowRatio    float64 `json:"flow_ratio"`

	// Fill
	FillTimeS            float64 `json:"fill_time_s"`
	InjectionPressureMPa float64 `json:"injection_pressure_mpa"`

	// Clamp tonnage
	Tonnage TonnageEstimate `json:"tonnage"`

	// Cycle time breakdown
	Cycle CycleBreakdown `json:"cycle_time"`

	// Weights, grams; shot volume, cm³
	PartWeightG   float64 `json:"part_weight_g"`
	ShotWeightG   float64 `json:"shot_weight_g"`
	ShotVolumeCm3 float64 `json:"shot_volume_cm3"`

	// Feasibility judgment
	Feasibility Feasibility `json:"feasibility"`

	// Warnings in evaluation order
	Warnings []Warning `json:"warnings"`

	// Ranked machine recommendations, best first, capped
	Machines []MachineRecommendation `json:"recommended_machines"`
}
