package formula

import (
	"math"
	"testing"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

func TestFillTimeReferenceCase(t *testing.T) {
	// 50 cm³, 3 mm gate, medium viscosity, 2.5 mm wall: a typical
	// mid-size part fills in well under 5 seconds.
	res, err := FillTime(50, 3, types.ViscosityMedium, 2.5)
	if err != nil {
		t.Fatalf("FillTime returned error: %v", err)
	}
	if res.FillTimeS < 0.5 || res.FillTimeS > 5 {
		t.Errorf("fill time = %.3f s, want within [0.5, 5]", res.FillTimeS)
	}

	// Q = 12 × π·1.5² / 1.0 × 1.0
	wantRate := 12 * math.Pi * 2.25
	if math.Abs(res.FlowRateCm3S-wantRate) > 1e-9 {
		t.Errorf("flow rate = %.4f cm³/s, want %.4f", res.FlowRateCm3S, wantRate)
	}
}

func TestFillTimeViscosityOrdering(t *testing.T) {
	low, err := FillTime(50, 3, types.ViscosityLow, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	med, err := FillTime(50, 3, types.ViscosityMedium, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	high, err := FillTime(50, 3, types.ViscosityHigh, 2.5)
	if err != nil {
		t.Fatal(err)
	}

	if !(low.FillTimeS < med.FillTimeS && med.FillTimeS < high.FillTimeS) {
		t.Errorf("fill times not ordered by viscosity: low=%.3f med=%.3f high=%.3f",
			low.FillTimeS, med.FillTimeS, high.FillTimeS)
	}
}

func TestFillTimeThicknessFactorCapped(t *testing.T) {
	// A very thick wall must not keep accelerating the fill: the
	// thickness factor caps at 1.2 (i.e. avg 3.0 mm and avg 10 mm give
	// the same flow rate).
	atCap, err := FillTime(50, 3, types.ViscosityMedium, 3.0)
	if err != nil {
		t.Fatal(err)
	}
	thick, err := FillTime(50, 3, types.ViscosityMedium, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(atCap.FlowRateCm3S-thick.FlowRateCm3S) > 1e-9 {
		t.Errorf("thickness factor not capped: %.4f vs %.4f", atCap.FlowRateCm3S, thick.FlowRateCm3S)
	}
}

func TestFillTimeZeroGateDiameterFails(t *testing.T) {
	_, err := FillTime(50, 0, types.ViscosityMedium, 2.5)
	if err == nil {
		t.Fatal("expected error for zero gate diameter, got nil")
	}
	if !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("error = %v, want %v", err, apperrors.TypeConfig)
	}
}

func TestInjectionPressure(t *testing.T) {
	tests := []struct {
		name         string
		flowLengthMm float64
		wallMm       float64
		viscosity    types.ViscosityClass
		baseMPa      float64
		want         float64
	}{
		// ratio 40 < 50: no ratio penalty
		{"short flow path", 100, 2.5, types.ViscosityMedium, 100, 100},
		// ratio 100: 1 + 0.3·log10(2) ≈ 1.0903
		{"long flow path", 250, 2.5, types.ViscosityMedium, 100, 109.03},
		// low viscosity discounts base pressure
		{"low viscosity", 100, 2.5, types.ViscosityLow, 100, 85},
		// high viscosity raises it
		{"high viscosity", 100, 2.5, types.ViscosityHigh, 100, 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InjectionPressure(tt.flowLengthMm, tt.wallMm, tt.viscosity, tt.baseMPa)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("pressure = %.3f MPa, want %.3f", got, tt.want)
			}
		})
	}
}

func TestInjectionPressureInvalidWall(t *testing.T) {
	_, err := InjectionPressure(100, 0, types.ViscosityMedium, 100)
	if err == nil {
		t.Fatal("expected error for zero wall thickness")
	}
	if !apperrors.IsType(err, apperrors.TypeGeometry) {
		t.Errorf("error = %v, want %v", err, apperrors.TypeGeometry)
	}
}
