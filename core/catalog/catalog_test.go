package catalog

import (
	"testing"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

func validMaterial(id string) types.MaterialProperties {
	return types.MaterialProperties{
		ID:                 id,
		Name:               "Generic ABS",
		Category:           "ABS",
		MeltTempMinC:       220,
		MeltTempMaxC:       260,
		MoldTempMinC:       50,
		MoldTempMaxC:       80,
		DensityGCm3:        1.05,
		ShrinkageMinPct:    0.4,
		ShrinkageMaxPct:    0.7,
		Viscosity:          types.ViscosityMedium,
		MaxFlowLengthRatio: 200,
		PressureMinMPa:     80,
		PressureMaxMPa:     120,
	}
}

func validMachine(id string, tonnage float64) types.MachineSpec {
	return types.MachineSpec{
		ID:               id,
		Name:             id,
		TonnageT:         tonnage,
		MaxShotVolumeCm3: tonnage * 2,
	}
}

func TestCatalogLookup(t *testing.T) {
	c, err := New(
		[]types.MaterialProperties{validMaterial("abs-generic"), validMaterial("abs-other")},
		[]types.MachineSpec{validMachine("press-80", 80), validMachine("press-150", 150)},
	)
	if err != nil {
		t.Fatal(err)
	}

	if c.MaterialCount() != 2 || c.MachineCount() != 2 {
		t.Fatalf("counts = %d/%d, want 2/2", c.MaterialCount(), c.MachineCount())
	}

	m, err := c.Material("abs-other")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != "abs-other" {
		t.Errorf("looked up %q, got %q", "abs-other", m.ID)
	}

	if _, err := c.Material("nope"); !apperrors.IsType(err, apperrors.TypeNotFound) {
		t.Errorf("missing material: error = %v, want NOT_FOUND", err)
	}
	if _, err := c.Machine("nope"); !apperrors.IsType(err, apperrors.TypeNotFound) {
		t.Errorf("missing machine: error = %v, want NOT_FOUND", err)
	}
}

func TestCatalogPreservesOrder(t *testing.T) {
	machines := []types.MachineSpec{
		validMachine("press-250", 250),
		validMachine("press-80", 80),
		validMachine("press-150", 150),
	}
	c, err := New(nil, machines)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Machines()
	for i := range machines {
		if got[i].ID != machines[i].ID {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, machines[i].ID)
		}
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	_, err := New([]types.MaterialProperties{validMaterial("abs"), validMaterial("abs")}, nil)
	if !apperrors.IsType(err, apperrors.TypeMaterial) {
		t.Errorf("duplicate material: error = %v, want INVALID_MATERIAL", err)
	}

	_, err = New(nil, []types.MachineSpec{validMachine("p", 80), validMachine("p", 150)})
	if !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("duplicate machine: error = %v, want INVALID_CONFIG", err)
	}
}

func TestValidateMaterial(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.MaterialProperties)
	}{
		{"missing id", func(m *types.MaterialProperties) { m.ID = "" }},
		{"missing name", func(m *types.MaterialProperties) { m.Name = "" }},
		{"zero density", func(m *types.MaterialProperties) { m.DensityGCm3 = 0 }},
		{"bad viscosity", func(m *types.MaterialProperties) { m.Viscosity = "syrupy" }},
		{"zero flow ratio", func(m *types.MaterialProperties) { m.MaxFlowLengthRatio = 0 }},
		{"inverted pressure range", func(m *types.MaterialProperties) { m.PressureMaxMPa = 50 }},
		{"inverted melt range", func(m *types.MaterialProperties) { m.MeltTempMaxC = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMaterial("abs")
			tt.mutate(&m)
			if err := ValidateMaterial(m); !apperrors.IsType(err, apperrors.TypeMaterial) {
				t.Errorf("error = %v, want INVALID_MATERIAL", err)
			}
		})
	}

	if err := ValidateMaterial(validMaterial("abs")); err != nil {
		t.Errorf("valid material rejected: %v", err)
	}
}

func TestValidateMachine(t *testing.T) {
	m := validMachine("press-80", 80)
	if err := ValidateMachine(m); err != nil {
		t.Errorf("valid machine rejected: %v", err)
	}

	m.MaxShotVolumeCm3 = 0
	if err := ValidateMachine(m); !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}
