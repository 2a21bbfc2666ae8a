package formula

import (
	"math"

	"mouldflow/core/types"
	"mouldflow/core/units"
	apperrors "mouldflow/internal/errors"
)

// baseFlowRateCm3PerSecMm2 is the empirical volumetric flow rate through
// the gate orifice at standard conditions, cm³/s per mm² of gate area.
const baseFlowRateCm3PerSecMm2 = 12.0

// referenceWallMm normalizes the thickness factor; walls thinner than
// this add flow resistance, thicker walls are capped at ×1.2 so the
// model never predicts unbounded acceleration.
const (
	referenceWallMm    = 2.5
	maxThicknessFactor = 1.2
)

// viscosityFlowFactor slows the melt for stiffer materials.
func viscosityFlowFactor(v types.ViscosityClass) float64 {
	switch v {
	case types.ViscosityLow:
		return 0.8
	case types.ViscosityHigh:
		return 1.3
	default:
		return 1.0
	}
}

// FillResult is the output of the fill time model.
type FillResult struct {
	// FillTimeS is the estimated fill time, seconds
	FillTimeS float64

	// FlowRateCm3S is the adjusted volumetric flow rate, cm³/s
	FlowRateCm3S float64
}

// FillTime estimates mold fill time from volumetric flow through the
// gate orifice: t = V / Q.
//
// Reference: adapted from Beaumont, "Runner and Gating Design Handbook".
func FillTime(volumeCm3, gateDiameterMm float64, viscosity types.ViscosityClass, avgThicknessMm float64) (FillResult, error) {
	if volumeCm3 <= 0 {
		return FillResult{}, apperrors.Geometry("part volume must be positive, got %g cm³", volumeCm3)
	}
	if gateDiameterMm <= 0 {
		// Hard input-validation failure, never a silent default.
		return FillResult{}, apperrors.Config("gate diameter must be positive, got %g mm", gateDiameterMm)
	}
	if avgThicknessMm <= 0 {
		return FillResult{}, apperrors.Geometry("average wall thickness must be positive, got %g mm", avgThicknessMm)
	}

	gateAreaMm2 := units.CircleAreaMm2(gateDiameterMm)
	thicknessFactor := math.Min(avgThicknessMm/referenceWallMm, maxThicknessFactor)

	flowRate := baseFlowRateCm3PerSecMm2 * gateAreaMm2 / viscosityFlowFactor(viscosity) * thicknessFactor
	if flowRate <= 0 || !isFinite(flowRate) {
		return FillResult{}, apperrors.Overflow("fill flow rate")
	}

	return FillResult{
		FillTimeS:    volumeCm3 / flowRate,
		FlowRateCm3S: flowRate,
	}, nil
}

// viscosityPressureFactor raises the required pressure for stiffer melts.
func viscosityPressureFactor(v types.ViscosityClass) float64 {
	switch v {
	case types.ViscosityLow:
		return 0.85
	case types.ViscosityHigh:
		return 1.25
	default:
		return 1.0
	}
}

// InjectionPressure estimates the required injection pressure from the
// material's recommended cavity pressure, scaled by viscosity and by the
// flow-length-to-thickness ratio:
//
// P = P_base × k_visc × (1 + 0.3 × log10(max((L/t)/50, 1)))
func InjectionPressure(flowLengthMm, wallThicknessMm float64, viscosity types.ViscosityClass, basePressureMPa float64) (float64, error) {
	if wallThicknessMm <= 0 {
		return 0, apperrors.Geometry("wall thickness must be positive, got %g mm", wallThicknessMm)
	}
	if basePressureMPa <= 0 {
		return 0, apperrors.Material("base cavity pressure must be positive, got %g MPa", basePressureMPa)
	}

	flowRatio := flowLengthMm / wallThicknessMm
	ratioFactor := 1 + 0.3*math.Log10(math.Max(flowRatio/50, 1))

	pressure := basePressureMPa * viscosityPressureFactor(viscosity) * ratioFactor
	if !isFinite(pressure) {
		return 0, apperrors.Overflow("injection pressure")
	}
	return pressure, nil
}
