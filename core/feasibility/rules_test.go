package feasibility

import (
	"reflect"
	"testing"

	"mouldflow/core/types"
)

// cleanInputs triggers no rule.
func cleanInputs() Inputs {
	return Inputs{
		MaxThicknessMm:      3.0,
		MinThicknessMm:      1.5,
		FlowRatio:           80,
		MaxFlowRatio:        200,
		ProjectedAreaCm2:    120,
		RecommendedTonnageT: 90,
	}
}

func TestEvaluateCleanPart(t *testing.T) {
	warnings := Evaluate(cleanInputs())
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %d: %+v", len(warnings), warnings)
	}
	f := Score(warnings)
	if f.Score != 100 || f.Status != types.StatusFeasible {
		t.Errorf("clean part scored %d (%s), want 100 (feasible)", f.Score, f.Status)
	}
}

func TestEvaluateEightMillimeterWall(t *testing.T) {
	// 8 mm crosses both thickness thresholds at once.
	in := cleanInputs()
	in.MaxThicknessMm = 8.0

	warnings := Evaluate(in)
	kinds := warningKinds(warnings)
	want := []types.WarningKind{types.WarnThickSection, types.WarnVeryThickSection}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("warnings = %v, want %v", kinds, want)
	}

	f := Score(warnings)
	if f.Score != 55 {
		t.Errorf("score = %d, want 55 (100 - 15 - 30)", f.Score)
	}
	if f.Status != types.StatusBorderline {
		t.Errorf("status = %s, want borderline", f.Status)
	}
}

func TestEvaluateThicknessBoundaries(t *testing.T) {
	tests := []struct {
		name string
		max  float64
		want []types.WarningKind
	}{
		{"at 4mm no warning", 4.0, nil},
		{"just over 4mm", 4.1, []types.WarningKind{types.WarnThickSection}},
		{"just under 8mm", 7.9, []types.WarningKind{types.WarnThickSection}},
		{"at 8mm both fire", 8.0, []types.WarningKind{types.WarnThickSection, types.WarnVeryThickSection}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := cleanInputs()
			in.MaxThicknessMm = tt.max
			got := warningKinds(Evaluate(in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("warnings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateFlowRatioBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  []types.WarningKind
	}{
		{"well under limit", 100, nil},
		{"just under 70% of limit", 139.9, nil},
		{"at 70% of limit", 140, []types.WarningKind{types.WarnBorderlineFlowRatio}},
		{"exactly at limit", 200, []types.WarningKind{types.WarnBorderlineFlowRatio}},
		{"over limit", 200.1, []types.WarningKind{types.WarnHighFlowRatio}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := cleanInputs()
			in.FlowRatio = tt.ratio
			got := warningKinds(Evaluate(in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ratio %.1f: warnings = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestEvaluateSingleRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
		want   types.WarningKind
		sev    types.Severity
	}{
		{"thin section", func(in *Inputs) { in.MinThicknessMm = 0.8 }, types.WarnThinSection, types.SeverityMedium},
		{"large projected area", func(in *Inputs) { in.ProjectedAreaCm2 = 650 }, types.WarnLargeProjectedArea, types.SeverityLow},
		{"high tonnage", func(in *Inputs) { in.RecommendedTonnageT = 520 }, types.WarnHighTonnage, types.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := cleanInputs()
			tt.mutate(&in)
			warnings := Evaluate(in)
			if len(warnings) != 1 {
				t.Fatalf("expected 1 warning, got %d: %+v", len(warnings), warnings)
			}
			if warnings[0].Kind != tt.want || warnings[0].Severity != tt.sev {
				t.Errorf("got %s/%s, want %s/%s", warnings[0].Kind, warnings[0].Severity, tt.want, tt.sev)
			}
			if warnings[0].DesignerMessage == "" || warnings[0].CustomerMessage == "" {
				t.Error("warning is missing a message")
			}
		})
	}
}

func TestEvaluateDeterministicOrder(t *testing.T) {
	// Every rule fires; the sequence must follow table order every time.
	in := Inputs{
		MaxThicknessMm:      9.0,
		MinThicknessMm:      0.5,
		FlowRatio:           260,
		MaxFlowRatio:        200,
		ProjectedAreaCm2:    800,
		RecommendedTonnageT: 600,
	}

	want := []types.WarningKind{
		types.WarnThickSection,
		types.WarnVeryThickSection,
		types.WarnThinSection,
		types.WarnHighFlowRatio,
		types.WarnLargeProjectedArea,
		types.WarnHighTonnage,
	}

	first := Evaluate(in)
	if got := warningKinds(first); !reflect.DeepEqual(got, want) {
		t.Fatalf("warnings = %v, want %v", got, want)
	}
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(Evaluate(in), first) {
			t.Fatal("warning sequence is not stable across evaluations")
		}
	}
}

func TestScoreFloor(t *testing.T) {
	warnings := []types.Warning{
		{Kind: types.WarnVeryThickSection, Severity: types.SeverityHigh},
		{Kind: types.WarnHighFlowRatio, Severity: types.SeverityHigh},
		{Kind: types.WarnThickSection, Severity: types.SeverityMedium},
		{Kind: types.WarnThinSection, Severity: types.SeverityMedium},
		{Kind: types.WarnHighTonnage, Severity: types.SeverityMedium},
	}
	f := Score(warnings)
	if f.Score != 0 {
		t.Errorf("score = %d, want floor 0", f.Score)
	}
	if f.Status != types.StatusNotRecommended {
		t.Errorf("status = %s, want not_recommended", f.Status)
	}
}

func TestScoreThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  types.FeasibilityStatus
	}{
		{100, types.StatusFeasible},
		{70, types.StatusFeasible},
		{65, types.StatusBorderline},
		{40, types.StatusBorderline},
		{35, types.StatusNotRecommended},
		{0, types.StatusNotRecommended},
	}

	for _, tt := range tests {
		warnings := warningsForScore(tt.score)
		f := Score(warnings)
		if f.Score != tt.score {
			t.Errorf("score = %d, want %d", f.Score, tt.score)
		}
		if f.Status != tt.want {
			t.Errorf("score %d: status = %s, want %s", tt.score, f.Status, tt.want)
		}
	}
}

func TestScoreIdempotence(t *testing.T) {
	in := Inputs{
		MaxThicknessMm:      8.0,
		MinThicknessMm:      0.9,
		FlowRatio:           150,
		MaxFlowRatio:        200,
		ProjectedAreaCm2:    550,
		RecommendedTonnageT: 120,
	}
	warnings := Evaluate(in)
	first := Score(warnings)
	second := Score(warnings)
	if first != second {
		t.Errorf("rescoring the same warnings changed the result: %+v vs %+v", first, second)
	}
}

func TestNoSuitableMachineWarning(t *testing.T) {
	w := NoSuitableMachine(750, 900)
	if w.Kind != types.WarnNoSuitableMachine {
		t.Errorf("kind = %s, want no_suitable_machine", w.Kind)
	}
	if w.Severity != types.SeverityMedium {
		t.Errorf("severity = %s, want medium", w.Severity)
	}
}

func warningKinds(warnings []types.Warning) []types.WarningKind {
	if len(warnings) == 0 {
		return nil
	}
	kinds := make([]types.WarningKind, len(warnings))
	for i, w := range warnings {
		kinds[i] = w.Kind
	}
	return kinds
}

// warningsForScore builds a synthetic warning list whose penalties sum
// to exactly 100 - score.
func warningsForScore(score int) []types.Warning {
	deficit := 100 - score
	var warnings []types.Warning
	for deficit >= 30 {
		warnings = append(warnings, types.Warning{Severity: types.SeverityHigh})
		deficit -= 30
	}
	for deficit >= 15 {
		warnings = append(warnings, types.Warning{Severity: types.SeverityMedium})
		deficit -= 15
	}
	for deficit >= 5 {
		warnings = append(warnings, types.Warning{Severity: types.SeverityLow})
		deficit -= 5
	}
	return warnings
}
