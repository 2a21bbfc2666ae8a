package formula

import (
	"math"
	"sort"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// FlowLength approximates the longest melt flow path, mm.
//
// With a known gate location the flow length is the distance from the
// gate to the farthest bounding-box corner. Without one, the gate is
// assumed centered on the largest face and the flow length is half the
// diagonal of the two largest extents. This is a calibrated heuristic:
// the flow-ratio warning thresholds assume exactly this approximation,
// so it must not be replaced by a more detailed model.
func FlowLength(bboxXMm, bboxYMm, bboxZMm float64, gate *types.GatePoint) (float64, error) {
	if bboxXMm <= 0 || bboxYMm <= 0 || bboxZMm <= 0 {
		return 0, apperrors.Geometry("bounding box extents must be positive, got %g × %g × %g mm", bboxXMm, bboxYMm, bboxZMm)
	}

	if gate != nil {
		longest := 0.0
		for _, cx := range []float64{0, bboxXMm} {
			for _, cy := range []float64{0, bboxYMm} {
				for _, cz := range []float64{0, bboxZMm} {
					d := math.Sqrt((cx-gate.X)*(cx-gate.X) + (cy-gate.Y)*(cy-gate.Y) + (cz-gate.Z)*(cz-gate.Z))
					if d > longest {
						longest = d
					}
				}
			}
		}
		return longest, nil
	}

	dims := []float64{bboxXMm, bboxYMm, bboxZMm}
	sort.Sort(sort.Reverse(sort.Float64Slice(dims)))
	return math.Sqrt((dims[0]/2)*(dims[0]/2) + (dims[1]/2)*(dims[1]/2)), nil
}

// FlowRiskStatus classifies flow-length utilization
type FlowRiskStatus string

const (
	FlowSafe       FlowRiskStatus = "safe"
	FlowBorderline FlowRiskStatus = "borderline"
	FlowRisk       FlowRiskStatus = "risk"
)

// FlowRiskResult is the outcome of the flow-length capability check.
type FlowRiskResult struct {
	Status             FlowRiskStatus
	ActualRatio        float64
	MaxRatio           float64
	UtilizationPercent float64
}

// CheckFlowRisk compares the actual flow-length-to-thickness ratio with
// the material limit from supplier datasheets. A ratio exactly at the
// limit is still classified borderline; only exceeding it is a risk.
func CheckFlowRisk(flowLengthMm, wallThicknessMm, materialMaxRatio float64) (FlowRiskResult, error) {
	if wallThicknessMm <= 0 {
		return FlowRiskResult{}, apperrors.Geometry("wall thickness must be positive, got %g mm", wallThicknessMm)
	}
	if materialMaxRatio <= 0 {
		return FlowRiskResult{}, apperrors.Material("max flow length ratio must be positive, got %g", materialMaxRatio)
	}

	ratio := flowLengthMm / wallThicknessMm

	status := FlowSafe
	switch {
	case ratio > materialMaxRatio:
		status = FlowRisk
	case ratio >= materialMaxRatio*0.7:
		status = FlowBorderline
	}

	return FlowRiskResult{
		Status:             status,
		ActualRatio:        ratio,
		MaxRatio:           materialMaxRatio,
		UtilizationPercent: ratio / materialMaxRatio * 100,
	}, nil
}
