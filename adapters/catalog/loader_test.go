package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	if err != nil {
		t.Fatal(err)
	}

	if c.MaterialCount() != 20 {
		t.Errorf("material count = %d, want 20", c.MaterialCount())
	}
	if c.MachineCount() != 10 {
		t.Errorf("machine count = %d, want 10", c.MachineCount())
	}

	abs, err := c.Material("abs-general-purpose")
	if err != nil {
		t.Fatal(err)
	}
	if abs.DensityGCm3 != 1.05 || abs.Viscosity != types.ViscosityMedium || abs.MaxFlowLengthRatio != 150 {
		t.Errorf("abs-general-purpose = %+v", abs)
	}
	if abs.ThermalClass() != types.Amorphous {
		t.Errorf("ABS thermal class = %s, want amorphous", abs.ThermalClass())
	}
	if abs.MidPressureMPa() != 100 {
		t.Errorf("ABS mid pressure = %g MPa, want 100", abs.MidPressureMPa())
	}

	pp, err := c.Material("pp-homopolymer")
	if err != nil {
		t.Fatal(err)
	}
	if pp.ThermalClass() != types.Crystalline {
		t.Errorf("PP thermal class = %s, want crystalline", pp.ThermalClass())
	}

	press, err := c.Machine("press-500")
	if err != nil {
		t.Fatal(err)
	}
	if press.TonnageT != 500 || press.MaxShotVolumeCm3 != 1200 {
		t.Errorf("press-500 = %+v", press)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	src := `
material "test-abs" {
  name                     = "Test ABS"
  category                 = "ABS"
  melt_temp_min            = 220
  melt_temp_max            = 260
  mold_temp_min            = 50
  mold_temp_max            = 80
  density                  = 1.05
  shrinkage_min            = 0.4
  shrinkage_max            = 0.7
  viscosity_class          = "medium"
  max_flow_length_ratio    = 150
  recommended_pressure_min = 80
  recommended_pressure_max = 120
}

machine "test-press" {
  name            = "Test 100T"
  tonnage         = 100
  shot_volume_max = 150
}
`
	if err := os.WriteFile(filepath.Join(dir, "catalog.hcl"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaterialCount() != 1 || c.MachineCount() != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", c.MaterialCount(), c.MachineCount())
	}
}

func TestLoadDirRejectsBadHCL(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.hcl"), []byte(`material "x" {`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDir(dir)
	if !apperrors.IsType(err, apperrors.TypeParsing) {
		t.Errorf("error = %v, want PARSING_ERROR", err)
	}
}

func TestLoadDirRejectsInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	src := `
material "bad" {
  name                     = "Bad"
  category                 = "ABS"
  melt_temp_min            = 220
  melt_temp_max            = 260
  mold_temp_min            = 50
  mold_temp_max            = 80
  density                  = 0
  shrinkage_min            = 0.4
  shrinkage_max            = 0.7
  viscosity_class          = "medium"
  max_flow_length_ratio    = 150
  recommended_pressure_min = 80
  recommended_pressure_max = 120
}
`
	if err := os.WriteFile(filepath.Join(dir, "catalog.hcl"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDir(dir)
	if !apperrors.IsType(err, apperrors.TypeMaterial) {
		t.Errorf("error = %v, want INVALID_MATERIAL", err)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	if !apperrors.IsType(err, apperrors.TypeParsing) {
		t.Errorf("error = %v, want PARSING_ERROR", err)
	}
}
