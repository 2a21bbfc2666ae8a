package units

import (
	"math"
	"testing"
)

func TestAreaVolumeConversions(t *testing.T) {
	if got := Cm2ToMm2(100); got != 10000 {
		t.Errorf("Cm2ToMm2(100) = %v, want 10000", got)
	}
	if got := Mm2ToCm2(10000); got != 100 {
		t.Errorf("Mm2ToCm2(10000) = %v, want 100", got)
	}
	if got := Cm3ToMm3(50); got != 50000 {
		t.Errorf("Cm3ToMm3(50) = %v, want 50000", got)
	}
	if got := Mm3ToCm3(1000); got != 1 {
		t.Errorf("Mm3ToCm3(1000) = %v, want 1", got)
	}
}

func TestKNToMetricTons(t *testing.T) {
	// 1000 kN under standard gravity
	got := KNToMetricTons(1000)
	want := 101.9716
	if math.Abs(got-want) > 0.001 {
		t.Errorf("KNToMetricTons(1000) = %v, want ~%v", got, want)
	}
}

func TestCircleAreaMm2(t *testing.T) {
	// 3mm gate: π × 1.5²
	got := CircleAreaMm2(3)
	want := math.Pi * 2.25
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("CircleAreaMm2(3) = %v, want %v", got, want)
	}
}
