package formula

import (
	"math"
	"testing"

	apperrors "mouldflow/internal/errors"
)

func TestPartWeight(t *testing.T) {
	tests := []struct {
		name      string
		volumeCm3 float64
		density   float64
		cavities  int
		wantPart  float64
		wantShot  float64
	}{
		{"single cavity PP", 50, 0.905, 1, 45.25, 45.25},
		{"four cavity ABS", 25, 1.05, 4, 26.25, 105.0},
		{"dense PA66 GF30", 120, 1.37, 2, 164.4, 328.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PartWeight(tt.volumeCm3, tt.density, tt.cavities)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got.PartWeightG-tt.wantPart) > 1e-9 {
				t.Errorf("part weight = %g g, want %g", got.PartWeightG, tt.wantPart)
			}
			if math.Abs(got.ShotWeightG-tt.wantShot) > 1e-9 {
				t.Errorf("shot weight = %g g, want %g", got.ShotWeightG, tt.wantShot)
			}
		})
	}
}

func TestPartWeightInvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		volumeCm3 float64
		density   float64
		cavities  int
		wantType  apperrors.Type
	}{
		{"zero volume", 0, 1.05, 1, apperrors.TypeGeometry},
		{"negative volume", -10, 1.05, 1, apperrors.TypeGeometry},
		{"zero density", 50, 0, 1, apperrors.TypeMaterial},
		{"zero cavities", 50, 1.05, 0, apperrors.TypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PartWeight(tt.volumeCm3, tt.density, tt.cavities)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperrors.IsType(err, tt.wantType) {
				t.Errorf("error type = %v, want %v", err, tt.wantType)
			}
		})
	}
}

func TestShotVolume(t *testing.T) {
	if got := ShotVolumeCm3(105.0); got != 105.0 {
		t.Errorf("shot volume = %g cm³, want 105", got)
	}
}
