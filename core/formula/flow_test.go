package formula

import (
	"math"
	"testing"

	"mouldflow/core/types"
)

func TestFlowLengthCenteredGate(t *testing.T) {
	// Gate assumed centered on the largest face: half-diagonal of the
	// two largest extents. 200 × 100 × 30 → √(100² + 50²)
	got, err := FlowLength(200, 100, 30, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(100*100 + 50*50)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("flow length = %.3f mm, want %.3f", got, want)
	}

	// Extent order must not matter.
	swapped, err := FlowLength(30, 200, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if swapped != got {
		t.Errorf("flow length depends on extent order: %.3f vs %.3f", swapped, got)
	}
}

func TestFlowLengthExplicitGate(t *testing.T) {
	// Gate in a corner: flow length reaches the opposite corner.
	gate := &types.GatePoint{X: 0, Y: 0, Z: 0}
	got, err := FlowLength(100, 100, 50, gate)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(100*100 + 100*100 + 50*50)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("flow length = %.3f mm, want %.3f", got, want)
	}

	// Centered gate reaches only half the diagonal.
	center := &types.GatePoint{X: 50, Y: 50, Z: 25}
	fromCenter, err := FlowLength(100, 100, 50, center)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fromCenter-want/2) > 1e-9 {
		t.Errorf("centered gate flow length = %.3f mm, want %.3f", fromCenter, want/2)
	}
}

func TestCheckFlowRisk(t *testing.T) {
	tests := []struct {
		name       string
		flowLength float64
		wall       float64
		maxRatio   float64
		want       FlowRiskStatus
	}{
		{"well within limit", 100, 2.0, 150, FlowSafe},
		{"just under 70% of limit", 208, 2.0, 150, FlowSafe},
		{"at 70% of limit", 210, 2.0, 150, FlowBorderline},
		{"exactly at limit", 300, 2.0, 150, FlowBorderline},
		{"beyond limit", 301, 2.0, 150, FlowRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CheckFlowRisk(tt.flowLength, tt.wall, tt.maxRatio)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tt.want {
				t.Errorf("status = %s (ratio %.1f / %.1f), want %s", res.Status, res.ActualRatio, res.MaxRatio, tt.want)
			}
		})
	}
}

func TestCheckFlowRiskUtilization(t *testing.T) {
	res, err := CheckFlowRisk(300, 2.0, 200)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.UtilizationPercent-75) > 1e-9 {
		t.Errorf("utilization = %.1f%%, want 75%%", res.UtilizationPercent)
	}
}
