// Package machines ranks catalog machines against the tonnage and shot
// volume an analysis requires.
package machines

import (
	"fmt"
	"sort"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// Tonnage band multipliers. Ideal is the smallest band that still has
// clamp headroom; an oversized press wastes cost, an undersized one
// flashes the mold.
const (
	idealMaxFactor      = 1.3
	acceptableMaxFactor = 1.8
	acceptableMinFactor = 0.9
)

// maxRecommendations caps the returned list. Callers always receive at
// most this many machines, best first.
const maxRecommendations = 5

// Recommend classifies every catalog machine against the required
// tonnage and shot volume and returns the top candidates, ideal band
// first, ascending tonnage within each band.
//
// A machine whose maximum shot volume is below the required shot volume
// is excluded outright, whatever its tonnage. An empty result is not an
// error; the caller decides how to surface it.
func Recommend(catalog []types.MachineSpec, requiredTonnageT, requiredShotCm3 float64) ([]types.MachineRecommendation, error) {
	if requiredTonnageT <= 0 {
		return nil, apperrors.Config("required tonnage must be positive, got %g T", requiredTonnageT)
	}
	if requiredShotCm3 <= 0 {
		return nil, apperrors.Config("required shot volume must be positive, got %g cm³", requiredShotCm3)
	}

	recs := []types.MachineRecommendation{}
	for _, m := range catalog {
		if m.MaxShotVolumeCm3 < requiredShotCm3 {
			continue
		}
		recs = append(recs, types.MachineRecommendation{
			Machine:     m,
			Suitability: classify(m.TonnageT, requiredTonnageT),
			Notes:       notes(m, requiredTonnageT, requiredShotCm3),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		ri, rj := recs[i].Suitability.Rank(), recs[j].Suitability.Rank()
		if ri != rj {
			return ri < rj
		}
		return recs[i].Machine.TonnageT < recs[j].Machine.TonnageT
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}

func classify(machineT, requiredT float64) types.Suitability {
	switch {
	case machineT >= requiredT && machineT <= requiredT*idealMaxFactor:
		return types.SuitabilityIdeal
	case machineT > requiredT*idealMaxFactor && machineT <= requiredT*acceptableMaxFactor:
		return types.SuitabilityAcceptable
	case machineT >= requiredT*acceptableMinFactor && machineT < requiredT:
		return types.SuitabilityAcceptable
	default:
		return types.SuitabilityBorderline
	}
}

func notes(m types.MachineSpec, requiredT, requiredShotCm3 float64) []string {
	var out []string
	if m.TonnageT < requiredT {
		out = append(out, fmt.Sprintf("clamp force %.0fT is below the recommended %.0fT", m.TonnageT, requiredT))
	}
	if m.TonnageT > requiredT*acceptableMaxFactor {
		out = append(out, fmt.Sprintf("machine is oversized for this part (%.0fT vs %.0fT required)", m.TonnageT, requiredT))
	}
	if util := requiredShotCm3 / m.MaxShotVolumeCm3 * 100; util > 80 {
		out = append(out, fmt.Sprintf("shot uses %.0f%% of barrel capacity", util))
	}
	return out
}
