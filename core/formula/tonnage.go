// Package formula implements the closed-form engineering models for
// injection molding feasibility. Every function is pure: no state, no
// side effects, explicit error returns. These are analytical
// approximations with a ±15–20% accuracy band, not FEA results.
package formula

import (
	"math"

	"mouldflow/core/types"
	"mouldflow/core/units"
	apperrors "mouldflow/internal/errors"
)

// conservativeMargin is the extra headroom applied on top of the
// recommended tonnage.
const conservativeMargin = 1.1

// ClampTonnage calculates the required clamp tonnage range.
//
// F(kN) = A(mm²) × n × P(MPa) / 1000, tons = F / 9.80665
//
// Reference: Rosato, "Injection Molding Handbook", 3rd Ed.
func ClampTonnage(projectedAreaCm2 float64, cavityCount int, cavityPressureMPa, safetyFactor float64) (types.TonnageEstimate, error) {
	if projectedAreaCm2 <= 0 {
		return types.TonnageEstimate{}, apperrors.Geometry("projected area must be positive, got %g cm²", projectedAreaCm2)
	}
	if cavityCount < 1 {
		return types.TonnageEstimate{}, apperrors.Config("cavity count must be at least 1, got %d", cavityCount)
	}
	if cavityPressureMPa <= 0 {
		return types.TonnageEstimate{}, apperrors.Material("cavity pressure must be positive, got %g MPa", cavityPressureMPa)
	}
	if safetyFactor <= 0 {
		return types.TonnageEstimate{}, apperrors.Config("safety factor must be positive, got %g", safetyFactor)
	}

	areaMm2 := units.Cm2ToMm2(projectedAreaCm2)
	forceKN := areaMm2 * float64(cavityCount) * cavityPressureMPa / 1000
	minimumT := units.KNToMetricTons(forceKN)

	est := types.TonnageEstimate{
		MinimumT:      minimumT,
		RecommendedT:  minimumT * safetyFactor,
		ConservativeT: minimumT * safetyFactor * conservativeMargin,
	}

	if !isFinite(est.ConservativeT) {
		return types.TonnageEstimate{}, apperrors.Overflow("clamp tonnage")
	}
	return est, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
