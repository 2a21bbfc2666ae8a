package round

import "testing"

func TestTo(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		places int32
		want   float64
	}{
		{"one place down", 117.264, 1, 117.3},
		{"one place up", 101.97, 1, 102.0},
		{"half rounds up", 2.25, 1, 2.3},
		{"two places", 1.005, 2, 1.01},
		{"negative", -3.45, 1, -3.5},
		{"integer unchanged", 80, 1, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := To(tt.in, tt.places); got != tt.want {
				t.Errorf("To(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
			}
		})
	}
}

func TestToOneToTwo(t *testing.T) {
	if got := ToOne(0.59); got != 0.6 {
		t.Errorf("ToOne(0.59) = %v, want 0.6", got)
	}
	if got := ToTwo(1.754999); got != 1.75 {
		t.Errorf("ToTwo(1.754999) = %v, want 1.75", got)
	}
}
