// Package catalog loads material and machine catalogs from HCL files.
// A built-in seed catalog ships embedded in the binary; a user catalog
// directory can replace it entirely.
package catalog

import (
	"mouldflow/core/types"
)

// catalogFile is the HCL schema of one catalog file. Files may mix
// material and machine blocks freely.
type catalogFile struct {
	Materials []materialBlock `hcl:"material,block"`
	Machines  []machineBlock  `hcl:"machine,block"`
}

type materialBlock struct {
	ID           string `hcl:"id,label"`
	Name         string `hcl:"name"`
	Manufacturer string `hcl:"manufacturer,optional"`
	Grade        string `hcl:"grade,optional"`
	Category     string `hcl:"category"`

	MeltTempMinC float64 `hcl:"melt_temp_min"`
	MeltTempMaxC float64 `hcl:"melt_temp_max"`
	MoldTempMinC float64 `hcl:"mold_temp_min"`
	MoldTempMaxC float64 `hcl:"mold_temp_max"`

	DensityGCm3     float64 `hcl:"density"`
	ShrinkageMinPct float64 `hcl:"shrinkage_min"`
	ShrinkageMaxPct float64 `hcl:"shrinkage_max"`
	MFI             float64 `hcl:"mfi,optional"`

	ViscosityClass     string  `hcl:"viscosity_class"`
	MaxFlowLengthRatio float64 `hcl:"max_flow_length_ratio"`

	PressureMinMPa float64 `hcl:"recommended_pressure_min"`
	PressureMaxMPa float64 `hcl:"recommended_pressure_max"`

	Source string `hcl:"source,optional"`
}

type machineBlock struct {
	ID           string `hcl:"id,label"`
	Name         string `hcl:"name"`
	Manufacturer string `hcl:"manufacturer,optional"`

	TonnageT         float64 `hcl:"tonnage"`
	MaxShotVolumeCm3 float64 `hcl:"shot_volume_max"`
	ScrewDiameterMm  float64 `hcl:"screw_diameter,optional"`

	PlatenWidthMm  float64 `hcl:"platen_width,optional"`
	PlatenHeightMm float64 `hcl:"platen_height,optional"`
	TieBarHMm      float64 `hcl:"tie_bar_spacing_h,optional"`
	TieBarVMm      float64 `hcl:"tie_bar_spacing_v,optional"`

	TypicalUse string `hcl:"typical_use,optional"`
}

func (b materialBlock) toMaterial() types.MaterialProperties {
	return types.MaterialProperties{
		ID:                 b.ID,
		Name:               b.Name,
		Manufacturer:       b.Manufacturer,
		Grade:              b.Grade,
		Category:           b.Category,
		MeltTempMinC:       b.MeltTempMinC,
		MeltTempMaxC:       b.MeltTempMaxC,
		MoldTempMinC:       b.MoldTempMinC,
		MoldTempMaxC:       b.MoldTempMaxC,
		DensityGCm3:        b.DensityGCm3,
		ShrinkageMinPct:    b.ShrinkageMinPct,
		ShrinkageMaxPct:    b.ShrinkageMaxPct,
		MFI:                b.MFI,
		Viscosity:          types.ViscosityClass(b.ViscosityClass),
		MaxFlowLengthRatio: b.MaxFlowLengthRatio,
		PressureMinMPa:     b.PressureMinMPa,
		PressureMaxMPa:     b.PressureMaxMPa,
		DataSource:         b.Source,
	}
}

func (b machineBlock) toMachine() types.MachineSpec {
	return types.MachineSpec{
		ID:               b.ID,
		Name:             b.Name,
		Manufacturer:     b.Manufacturer,
		TonnageT:         b.TonnageT,
		MaxShotVolumeCm3: b.MaxShotVolumeCm3,
		ScrewDiameterMm:  b.ScrewDiameterMm,
		PlatenWidthMm:    b.PlatenWidthMm,
		PlatenHeightMm:   b.PlatenHeightMm,
		TieBarHMm:        b.TieBarHMm,
		TieBarVMm:        b.TieBarVMm,
		TypicalUse:       b.TypicalUse,
	}
}
