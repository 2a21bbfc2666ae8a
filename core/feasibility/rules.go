// Package feasibility evaluates moldability warnings and folds them into
// a feasibility score and status.
//
// Rules live in one fixed, declared table and are evaluated top to
// bottom, so the warning sequence for identical inputs is always the
// same. The score is a pure fold over the warning severities: rescoring
// a stored warning list reproduces the stored score exactly.
package feasibility

import (
	"fmt"

	"mouldflow/core/types"
)

// Inputs collects everything the rule table reads. All values come from
// a single analysis pass; nothing here is re-queried from the catalog.
type Inputs struct {
	MaxThicknessMm      float64
	MinThicknessMm      float64
	FlowRatio           float64
	MaxFlowRatio        float64
	ProjectedAreaCm2    float64
	RecommendedTonnageT float64
}

// rule couples a trigger condition with the warning it emits.
type rule struct {
	when func(Inputs) bool
	warn func(Inputs) types.Warning
}

// Thresholds for the rule table. very_thick_section fires at exactly
// 8 mm and above; a flow ratio exactly at the material limit is
// borderline, not high.
const (
	thickSectionMm     = 4.0
	veryThickSectionMm = 8.0
	thinSectionMm      = 1.0
	borderlineFlowFrac = 0.7
	largeAreaCm2       = 500.0
	highTonnageT       = 500.0
)

var rules = []rule{
	{
		when: func(in Inputs) bool { return in.MaxThicknessMm > thickSectionMm },
		warn: func(in Inputs) types.Warning {
			return types.Warning{
				Kind:            types.WarnThickSection,
				Severity:        types.SeverityMedium,
				DesignerMessage: fmt.Sprintf("Max thickness %.1fmm may cause sink marks and extended cooling time", in.MaxThicknessMm),
				CustomerMessage: "Thick section detected - may affect surface quality and increase cycle time",
				Remediation:     "Consider coring out thick sections or reducing wall thickness",
			}
		},
	},
	{
		when: func(in Inputs) bool { return in.MaxThicknessMm >= veryThickSectionMm },
		warn: func(in Inputs) types.Warning {
			return types.Warning{
				Kind:            types.WarnVeryThickSection,
				Severity:        types.SeverityHigh,
				DesignerMessage: fmt.Sprintf("Max thickness %.1fmm will significantly increase cycle time and risk of voids", in.MaxThicknessMm),
				CustomerMessage: "Very thick section - will increase production time and may affect part quality",
				Remediation:     "Strongly recommend design review to reduce thickness",
			}
		},
	},
	{
		when: func(in Inputs) bool { return in.MinThicknessMm < thinSectionMm },
		warn: func(in Inputs) types.Warning {
			return types.Warning{
				Kind:            types.WarnThinSection,
				Severity:        types.SeverityMedium,
				DesignerMessage: fmt.Sprintf("Min thickness %.1fmm risks short shots, especially far from gate", in.MinThicknessMm),
				CustomerMessage: "Very thin areas may be difficult to fill completely",
				Remediation:     "Ensure gate is positioned near thin sections or increase thickness",
			}
		},
	},
	{
		when: func(in Inputs) bool { return in.FlowRatio > in.MaxFlowRatio },
		warn: func(in Inputs) types.Warning {
			return types.Warning{
				Kind:            types.WarnHighFlowRatio,
				Severity:        types.SeverityHigh,
				DesignerMessage: fmt.Sprintf("Flow L/t ratio %.0f exceeds %.0f material limit", in.FlowRatio, in.MaxFlowRatio),
				CustomerMessage: "Part geometry is challenging for this material - may need additional gates",
				Remediation:     "Consider multiple gates, higher-flow material, or thicker walls",
			}
		},
	},
	{
		when: func(in Inputs) bool {
			return in.FlowRatio >= in.MaxFlowRatio*borderlineFlowFrac && in.FlowRatio <= in.MaxFlowRatio
		},
		warn: func(in Inputs) types.Warning {
			return types.Warning{
				Kind:            types.WarnBorderlineFlowRatio,
				Severity:        types.SeverityLow,
				DesignerMessage: fmt.Sprintf("Flow L/t ratio %.0f is approaching the %.0f material limit", in.FlowRatio, in.MaxFlowRatio),
				CustomerMessage: "Part geometry is near the flow limit for this material",
				Remediation:     "Verify gate position; a higher-flow grade gives more margin",
			}
		},
	},
	{
		when: func(in Inputs) bool { return in.ProjectedAreaCm2 > largeAreaCm2 },
		warn: func(in Inputs) types.Warning {
			return types.Warning{
				Kind:            types.WarnLargeProjectedArea,
				Severity:        types.SeverityLow,
				DesignerMessage: fmt.Sprintf("Large projected area (%.0f cm²) requires careful venting", in.ProjectedAreaCm2),
				CustomerMessage: "Large part size - ensure adequate machine capacity",
				Remediation:     "Plan for adequate venting and balanced fill",
			}
		},
	},
	{
		when: func(in Inputs) bool { return in.RecommendedTonnageT > highTonnageT },
		warn: func(in Inputs) types.Warning {
			return types.Warning{
				Kind:            types.WarnHighTonnage,
				Severity:        types.SeverityMedium,
				DesignerMessage: fmt.Sprintf("High tonnage requirement (%.0fT) - verify machine availability", in.RecommendedTonnageT),
				CustomerMessage: "Requires larger machine - may affect production costs",
				Remediation:     "Confirm machine availability with supplier",
			}
		},
	},
}

// Evaluate runs the rule table in declared order and returns the
// triggered warnings, insertion order matching evaluation order.
func Evaluate(in Inputs) []types.Warning {
	warnings := []types.Warning{}
	for _, r := range rules {
		if r.when(in) {
			warnings = append(warnings, r.warn(in))
		}
	}
	return warnings
}

// NoSuitableMachine builds the warning appended when the recommender
// returns no machines. It is not part of the rule table: the caller
// appends it after recommendation and before scoring so score and
// status stay consistent with the final warning list.
func NoSuitableMachine(requiredTonnageT, requiredShotCm3 float64) types.Warning {
	return types.Warning{
		Kind:            types.WarnNoSuitableMachine,
		Severity:        types.SeverityMedium,
		DesignerMessage: fmt.Sprintf("No catalog machine covers %.0fT with a %.0f cm³ shot", requiredTonnageT, requiredShotCm3),
		CustomerMessage: "No standard machine matches this part - a larger press must be sourced",
		Remediation:     "Extend the machine catalog or reduce cavity count",
	}
}
