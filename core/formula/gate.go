package formula

import (
	"math"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// Gate sizing rule of thumb: gate diameter is 50–80% of the thickest
// wall, adjusted for melt viscosity, gate type and part volume, clamped
// to 40–80% and never below the practical minimum.
const (
	gateBaseFraction = 0.6
	gateMinFraction  = 0.4
	gateMaxFraction  = 0.8
	gateMinDiameterMm = 0.8
)

// runnerToGateRatio sizes the runner from the gate.
// Rule of thumb: runner = 1.5–2× gate diameter.
const runnerToGateRatio = 1.75

// gateTypeFactor scales the gate for its geometry: pin and submarine
// gates run smaller, fan gates slightly larger.
func gateTypeFactor(g types.GateType) float64 {
	switch g {
	case types.GatePin:
		return 0.85
	case types.GateSubmarine:
		return 0.8
	case types.GateFan:
		return 1.1
	default: // edge
		return 1.0
	}
}

// gateViscosityAdjust widens the gate for stiff melts.
func gateViscosityAdjust(v types.ViscosityClass) float64 {
	switch v {
	case types.ViscosityLow:
		return -0.05
	case types.ViscosityHigh:
		return 0.1
	default:
		return 0.0
	}
}

// GateDiameter recommends a gate diameter, mm.
func GateDiameter(volumeCm3, maxThicknessMm float64, viscosity types.ViscosityClass, gate types.GateType) (float64, error) {
	if maxThicknessMm <= 0 {
		return 0, apperrors.Geometry("max wall thickness must be positive, got %g mm", maxThicknessMm)
	}
	if volumeCm3 <= 0 {
		return 0, apperrors.Geometry("part volume must be positive, got %g cm³", volumeCm3)
	}

	// Larger parts need bigger gates, capped at +10%.
	volumeAdjust := math.Min(0.1, volumeCm3/500*0.1)

	fraction := gateBaseFraction + gateViscosityAdjust(viscosity) + volumeAdjust
	fraction = math.Min(gateMaxFraction, math.Max(gateMinFraction, fraction))

	d := maxThicknessMm * fraction * gateTypeFactor(gate)
	return math.Max(d, gateMinDiameterMm), nil
}

// RunnerDiameter recommends a runner diameter from the gate diameter, mm.
//
// Reference: Beaumont, "Runner and Gating Design Handbook".
func RunnerDiameter(gateDiameterMm float64) (float64, error) {
	if gateDiameterMm <= 0 {
		return 0, apperrors.Config("gate diameter must be positive, got %g mm", gateDiameterMm)
	}
	return gateDiameterMm * runnerToGateRatio, nil
}
