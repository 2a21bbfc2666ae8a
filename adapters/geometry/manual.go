// Package geometry produces GeometrySummary values from manual
// dimensions or uploaded STL files. It is the geometry provider the
// engine is wired to; the engine itself never reads files.
package geometry

import (
	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
	"mouldflow/internal/round"
)

// Manual thickness spread factors. Without CAD data the best assumption
// is a moderate spread around the stated average wall.
const (
	manualMinFactor = 0.8
	manualMaxFactor = 1.5
)

// FromManual estimates geometry from outer dimensions and an average
// wall thickness using a hollow-box approximation. The result carries
// the manual provenance flag so downstream views label it as an
// estimate.
func FromManual(lengthMm, widthMm, heightMm, avgThicknessMm float64) (types.GeometrySummary, error) {
	if lengthMm <= 0 || widthMm <= 0 || heightMm <= 0 {
		return types.GeometrySummary{}, apperrors.Geometry("part dimensions must be positive, got %g × %g × %g mm", lengthMm, widthMm, heightMm)
	}
	if avgThicknessMm <= 0 {
		return types.GeometrySummary{}, apperrors.Geometry("average wall thickness must be positive, got %g mm", avgThicknessMm)
	}

	outerMm3 := lengthMm * widthMm * heightMm
	innerMm3 := (lengthMm - 2*avgThicknessMm) * (widthMm - 2*avgThicknessMm) * (heightMm - 2*avgThicknessMm)
	if innerMm3 < 0 {
		// Walls meet in the middle: the part is solid.
		innerMm3 = 0
	}
	volumeMm3 := outerMm3 - innerMm3

	surfaceMm2 := 2 * (lengthMm*widthMm + widthMm*heightMm + heightMm*lengthMm)
	projectedMm2 := lengthMm * widthMm

	return types.GeometrySummary{
		VolumeCm3:        round.To(volumeMm3/1000, 3),
		ProjectedAreaCm2: round.ToTwo(projectedMm2 / 100),
		SurfaceAreaCm2:   round.ToTwo(surfaceMm2 / 100),
		MinThicknessMm:   round.ToTwo(avgThicknessMm * manualMinFactor),
		AvgThicknessMm:   round.ToTwo(avgThicknessMm),
		MaxThicknessMm:   round.ToTwo(avgThicknessMm * manualMaxFactor),
		BBoxXMm:          round.ToTwo(lengthMm),
		BBoxYMm:          round.ToTwo(widthMm),
		BBoxZMm:          round.ToTwo(heightMm),
		Source:           types.SourceManual,
	}, nil
}
