// Package engine orchestrates one feasibility analysis: validation,
// formula evaluation, warning rules, machine recommendation and final
// result assembly. There are exactly two outcomes: a complete
// AnalysisResult or an error — no partial results.
//
// The engine is pure: no I/O, no logging, no clock, no shared mutable
// state. Concurrent Run calls need no coordination.
package engine

import (
	"math"

	"mouldflow/core/feasibility"
	"mouldflow/core/formula"
	"mouldflow/core/machines"
	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
	"mouldflow/internal/round"
)

// Run executes a full analysis against a catalog snapshot. Steps run in
// a fixed order; any failure aborts the whole run. An empty machine
// recommendation list is not a failure: it is reported through a
// warning so the feasibility score stays consistent with the final
// warning list.
func Run(geo types.GeometrySummary, mat types.MaterialProperties, machineCatalog []types.MachineSpec, cfg types.ProcessConfig) (*types.AnalysisResult, error) {
	if err := validate(geo, mat, cfg); err != nil {
		return nil, err
	}

	// Gate and runner sizing, unless overridden.
	gateMm := 0.0
	if cfg.GateDiameterMm != nil {
		gateMm = *cfg.GateDiameterMm
	} else {
		var err error
		gateMm, err = formula.GateDiameter(geo.VolumeCm3, geo.MaxThicknessMm, mat.Viscosity, cfg.Gate)
		if err != nil {
			return nil, err
		}
	}
	runnerMm := 0.0
	if cfg.RunnerDiameterMm != nil {
		runnerMm = *cfg.RunnerDiameterMm
	} else {
		var err error
		runnerMm, err = formula.RunnerDiameter(gateMm)
		if err != nil {
			return nil, err
		}
	}

	// Flow path.
	flowLenMm, err := formula.FlowLength(geo.BBoxXMm, geo.BBoxYMm, geo.BBoxZMm, cfg.GateLocation)
	if err != nil {
		return nil, err
	}
	flowRisk, err := formula.CheckFlowRisk(flowLenMm, geo.AvgThicknessMm, mat.MaxFlowLengthRatio)
	if err != nil {
		return nil, err
	}

	// Fill and pressure.
	fill, err := formula.FillTime(geo.VolumeCm3, gateMm, mat.Viscosity, geo.AvgThicknessMm)
	if err != nil {
		return nil, err
	}
	injPressureMPa, err := formula.InjectionPressure(flowLenMm, geo.AvgThicknessMm, mat.Viscosity, mat.MidPressureMPa())
	if err != nil {
		return nil, err
	}

	// Clamp tonnage from the material's recommended cavity pressure.
	tonnage, err := formula.ClampTonnage(geo.ProjectedAreaCm2, cfg.CavityCount, mat.MidPressureMPa(), cfg.SafetyFactor)
	if err != nil {
		return nil, err
	}

	// Cycle time.
	cycle, err := formula.CycleTime(fill.FillTimeS, geo.MaxThicknessMm, mat.ThermalClass())
	if err != nil {
		return nil, err
	}

	// Weights.
	weight, err := formula.PartWeight(geo.VolumeCm3, mat.DensityGCm3, cfg.CavityCount)
	if err != nil {
		return nil, err
	}
	shotCm3 := formula.ShotVolumeCm3(weight.ShotWeightG)

	for _, v := range []float64{gateMm, runnerMm, flowLenMm, fill.FillTimeS, injPressureMPa, cycle.TotalS, weight.ShotWeightG, shotCm3} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, apperrors.Overflow("analysis intermediate")
		}
	}

	// Warning rules over geometry and derived results.
	warnings := feasibility.Evaluate(feasibility.Inputs{
		MaxThicknessMm:      geo.MaxThicknessMm,
		MinThicknessMm:      geo.MinThicknessMm,
		FlowRatio:           flowRisk.ActualRatio,
		MaxFlowRatio:        mat.MaxFlowLengthRatio,
		ProjectedAreaCm2:    geo.ProjectedAreaCm2,
		RecommendedTonnageT: tonnage.RecommendedT,
	})

	// Machine recommendation, then the no-machine warning so the score
	// reflects it.
	recs, err := machines.Recommend(machineCatalog, tonnage.RecommendedT, shotCm3)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		warnings = append(warnings, feasibility.NoSuitableMachine(tonnage.RecommendedT, shotCm3))
	}

	feas := feasibility.Score(warnings)

	// Reported figures carry a declared precision: one decimal for
	// times, tonnage and pressure, two for diameters and weights. The
	// cycle total is the exact sum of the rounded components.
	cycleOut := types.CycleBreakdown{
		FillS:     round.ToOne(cycle.FillS),
		PackS:     round.ToOne(cycle.PackS),
		CoolingS:  round.ToOne(cycle.CoolingS),
		OverheadS: round.ToOne(cycle.OverheadS),
	}
	cycleOut.TotalS = cycleOut.FillS + cycleOut.PackS + cycleOut.CoolingS + cycleOut.OverheadS

	return &types.AnalysisResult{
		MaterialID:     mat.ID,
		Config:         cfg,
		GeometrySource: geo.Source,

		GateDiameterMm:   round.ToTwo(gateMm),
		RunnerDiameterMm: round.ToTwo(runnerMm),

		FlowLengthMm: round.ToOne(flowLenMm),
		FlowRatio:    round.ToOne(flowRisk.ActualRatio),

		FillTimeS:            round.ToOne(fill.FillTimeS),
		InjectionPressureMPa: round.ToOne(injPressureMPa),

		Tonnage: types.TonnageEstimate{
			MinimumT:      round.ToOne(tonnage.MinimumT),
			RecommendedT:  round.ToOne(tonnage.RecommendedT),
			ConservativeT: round.ToOne(tonnage.ConservativeT),
		},

		Cycle: cycleOut,

		PartWeightG:   round.ToTwo(weight.PartWeightG),
		ShotWeightG:   round.ToTwo(weight.ShotWeightG),
		ShotVolumeCm3: round.ToTwo(shotCm3),

		Feasibility: feas,
		Warnings:    warnings,
		Machines:    recs,
	}, nil
}
