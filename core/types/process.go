package types

// GateType is the gate geometry used to feed the cavity
type GateType string

const (
	GateEdge      GateType = "edge"
	GatePin       GateType = "pin"
	GateFan       GateType = "fan"
	GateSubmarine GateType = "submarine"
)

// IsValid checks if the gate type is known
func (g GateType) IsValid() bool {
	switch g {
	case GateEdge, GatePin, GateFan, GateSubmarine:
		return true
	default:
		return false
	}
}

// ProcessConfig holds the user-chosen process parameters for one analysis.
type ProcessConfig struct {
	// CavityCount is the number of cavities in the tool, ≥ 1
	CavityCount int `json:"cavity_count"`

	// Gate is the gate type
	Gate GateType `json:"gate_type"`

	// SafetyFactor scales the minimum tonnage, typically 1.0–1.5
	SafetyFactor float64 `json:"safety_factor"`

	// GateDiameterMm overrides the gate sizing heuristic when set.
	// Nil means derive from geometry and material.
	GateDiameterMm *float64 `json:"gate_diameter_mm,omitempty"`

	// RunnerDiameterMm overrides the runner sizing heuristic when set.
	RunnerDiameterMm *float64 `json:"runner_diameter_mm,omitempty"`

	// GateLocation optionally fixes the gate position for the
	// flow-length estimate. Nil assumes a centered gate.
	GateLocation *GatePoint `json:"gate_location,omitempty"`
}
