package formula

import (
	apperrors "mouldflow/internal/errors"
)

// WeightResult holds per-part and per-shot weight, grams.
type WeightResult struct {
	PartWeightG float64
	ShotWeightG float64
}

// PartWeight calculates part and shot weight: W = V × ρ.
// Volume and density must come from the same snapshot used by the rest
// of the analysis so all figures in one result agree.
func PartWeight(volumeCm3, densityGCm3 float64, cavityCount int) (WeightResult, error) {
	if volumeCm3 <= 0 {
		return WeightResult{}, apperrors.Geometry("part volume must be positive, got %g cm³", volumeCm3)
	}
	if densityGCm3 <= 0 {
		return WeightResult{}, apperrors.Material("density must be positive, got %g g/cm³", densityGCm3)
	}
	if cavityCount < 1 {
		return WeightResult{}, apperrors.Config("cavity count must be at least 1, got %d", cavityCount)
	}

	part := volumeCm3 * densityGCm3
	return WeightResult{
		PartWeightG: part,
		ShotWeightG: part * float64(cavityCount),
	}, nil
}

// ShotVolumeCm3 approximates the shot volume a machine must deliver from
// the shot weight, using unit melt density. Kept deliberately coarse; the
// machine suitability thresholds are calibrated against this
// approximation.
func ShotVolumeCm3(shotWeightG float64) float64 {
	return shotWeightG / 1.0
}
