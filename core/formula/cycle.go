package formula

import (
	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// Cooling coefficients, s/mm². Crystalline materials release latent heat
// while solidifying and need longer cooling. Declared constants, not
// derived from material data.
const (
	coolingCoeffCrystalline = 2.5
	coolingCoeffAmorphous   = 2.0
)

// packFraction sizes the pack/hold phase relative to cooling.
const packFraction = 0.3

// moldOverheadS is the fixed mold open/close plus ejection time, seconds.
const moldOverheadS = 3.0

// CycleTime estimates the full molding cycle. Cooling dominates and
// scales with the square of the thickest wall.
//
// Reference: Menges, "How to Make Injection Molds", 3rd Ed.
func CycleTime(fillTimeS, maxThicknessMm float64, thermal types.ThermalClass) (types.CycleBreakdown, error) {
	if fillTimeS < 0 {
		return types.CycleBreakdown{}, apperrors.Geometry("fill time must not be negative, got %g s", fillTimeS)
	}
	if maxThicknessMm <= 0 {
		return types.CycleBreakdown{}, apperrors.Geometry("max wall thickness must be positive, got %g mm", maxThicknessMm)
	}

	coeff := coolingCoeffAmorphous
	if thermal == types.Crystalline {
		coeff = coolingCoeffCrystalline
	}

	cooling := coeff * maxThicknessMm * maxThicknessMm
	pack := cooling * packFraction

	b := types.CycleBreakdown{
		FillS:     fillTimeS,
		PackS:     pack,
		CoolingS:  cooling,
		OverheadS: moldOverheadS,
	}
	b.TotalS = b.FillS + b.PackS + b.CoolingS + b.OverheadS

	if !isFinite(b.TotalS) {
		return types.CycleBreakdown{}, apperrors.Overflow("cycle time")
	}
	return b, nil
}
