package feasibility

import (
	"mouldflow/core/types"
)

// Status thresholds. Score starts at 100 and each warning subtracts its
// severity penalty, floored at zero.
const (
	feasibleMinScore   = 70
	borderlineMinScore = 40
)

// Score folds a warning list into a feasibility score and status. It is
// the single source of truth: every stored score must be reproducible by
// calling Score on the stored warning list.
func Score(warnings []types.Warning) types.Feasibility {
	score := 100
	for _, w := range warnings {
		score -= w.Severity.Penalty()
	}
	if score < 0 {
		score = 0
	}

	status := types.StatusNotRecommended
	switch {
	case score >= feasibleMinScore:
		status = types.StatusFeasible
	case score >= borderlineMinScore:
		status = types.StatusBorderline
	}

	return types.Feasibility{
		Status: status,
		Score:  score,
	}
}
