package engine

import (
	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// validate checks every input before any calculation runs. It
// short-circuits on the first invalid input: the caller gets exactly one
// violated precondition per failed run, in a fixed check order, rather
// than an aggregate.
func validate(geo types.GeometrySummary, mat types.MaterialProperties, cfg types.ProcessConfig) error {
	if err := validateGeometry(geo); err != nil {
		return err
	}
	if err := validateMaterial(mat); err != nil {
		return err
	}
	return validateConfig(cfg)
}

func validateGeometry(geo types.GeometrySummary) error {
	switch {
	case geo.VolumeCm3 <= 0:
		return apperrors.Geometry("part volume must be positive, got %g cm³", geo.VolumeCm3)
	case geo.ProjectedAreaCm2 <= 0:
		return apperrors.Geometry("projected area must be positive, got %g cm²", geo.ProjectedAreaCm2)
	case geo.MinThicknessMm <= 0:
		return apperrors.Geometry("min wall thickness must be positive, got %g mm", geo.MinThicknessMm)
	case geo.AvgThicknessMm < geo.MinThicknessMm:
		return apperrors.Geometry("avg wall thickness %g mm is below min %g mm", geo.AvgThicknessMm, geo.MinThicknessMm)
	case geo.MaxThicknessMm < geo.AvgThicknessMm:
		return apperrors.Geometry("max wall thickness %g mm is below avg %g mm", geo.MaxThicknessMm, geo.AvgThicknessMm)
	case geo.BBoxXMm <= 0 || geo.BBoxYMm <= 0 || geo.BBoxZMm <= 0:
		return apperrors.Geometry("bounding box extents must be positive, got %g × %g × %g mm", geo.BBoxXMm, geo.BBoxYMm, geo.BBoxZMm)
	case !geo.Source.IsValid():
		return apperrors.Geometry("unknown geometry source %q", geo.Source)
	}
	return nil
}

func validateMaterial(mat types.MaterialProperties) error {
	switch {
	case mat.DensityGCm3 <= 0:
		return apperrors.Material("density must be positive, got %g g/cm³", mat.DensityGCm3)
	case !mat.Viscosity.IsValid():
		return apperrors.Material("unknown viscosity class %q", mat.Viscosity)
	case mat.MaxFlowLengthRatio <= 0:
		return apperrors.Material("max flow length ratio must be positive, got %g", mat.MaxFlowLengthRatio)
	case mat.MidPressureMPa() <= 0:
		return apperrors.Material("recommended pressure range midpoint must be positive, got %g MPa", mat.MidPressureMPa())
	}
	return nil
}

func validateConfig(cfg types.ProcessConfig) error {
	switch {
	case cfg.CavityCount < 1:
		return apperrors.Config("cavity count must be at least 1, got %d", cfg.CavityCount)
	case !cfg.Gate.IsValid():
		return apperrors.Config("unknown gate type %q", cfg.Gate)
	case cfg.SafetyFactor <= 0:
		return apperrors.Config("safety factor must be positive, got %g", cfg.SafetyFactor)
	case cfg.GateDiameterMm != nil && *cfg.GateDiameterMm <= 0:
		return apperrors.Config("gate diameter override must be positive, got %g mm", *cfg.GateDiameterMm)
	case cfg.RunnerDiameterMm != nil && *cfg.RunnerDiameterMm <= 0:
		return apperrors.Config("runner diameter override must be positive, got %g mm", *cfg.RunnerDiameterMm)
	}
	return nil
}
