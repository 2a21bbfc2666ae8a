package machines

import (
	"testing"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

func machine(name string, tonnage, shotCm3 float64) types.MachineSpec {
	return types.MachineSpec{
		ID:               name,
		Name:             name,
		TonnageT:         tonnage,
		MaxShotVolumeCm3: shotCm3,
	}
}

func TestRecommendBands(t *testing.T) {
	// Required 150T: ideal [150, 195], acceptable (195, 270] and
	// [135, 150), borderline otherwise.
	catalog := []types.MachineSpec{
		machine("press-120", 120, 500),
		machine("press-140", 140, 500),
		machine("press-180", 180, 500),
		machine("press-250", 250, 500),
		machine("press-400", 400, 500),
	}

	recs, err := Recommend(catalog, 150, 100)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		id   string
		suit types.Suitability
	}{
		{"press-180", types.SuitabilityIdeal},
		{"press-140", types.SuitabilityAcceptable},
		{"press-250", types.SuitabilityAcceptable},
		{"press-120", types.SuitabilityBorderline},
		{"press-400", types.SuitabilityBorderline},
	}

	if len(recs) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(want))
	}
	for i, w := range want {
		if recs[i].Machine.ID != w.id || recs[i].Suitability != w.suit {
			t.Errorf("rank %d: got %s (%s), want %s (%s)", i, recs[i].Machine.ID, recs[i].Suitability, w.id, w.suit)
		}
	}
}

func TestRecommendShotVolumeExclusion(t *testing.T) {
	// 120T press would be acceptable-undersized on tonnage alone, but its
	// barrel cannot deliver the shot, so it must never appear.
	catalog := []types.MachineSpec{
		machine("press-120", 120, 80),
		machine("press-180", 180, 500),
	}

	recs, err := Recommend(catalog, 150, 100)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		if r.Machine.MaxShotVolumeCm3 < 100 {
			t.Errorf("machine %s returned with shot volume %.0f < required 100", r.Machine.ID, r.Machine.MaxShotVolumeCm3)
		}
	}
	if len(recs) != 1 || recs[0].Machine.ID != "press-180" {
		t.Fatalf("recs = %+v, want only press-180", recs)
	}
	if recs[0].Suitability != types.SuitabilityIdeal {
		t.Errorf("press-180 classified %s, want ideal", recs[0].Suitability)
	}
}

func TestRecommendTonnageBoundaries(t *testing.T) {
	tests := []struct {
		tonnage float64
		want    types.Suitability
	}{
		{150, types.SuitabilityIdeal},      // lower ideal edge
		{195, types.SuitabilityIdeal},      // 1.3× edge, inclusive
		{195.1, types.SuitabilityAcceptable},
		{270, types.SuitabilityAcceptable}, // 1.8× edge, inclusive
		{270.1, types.SuitabilityBorderline},
		{135, types.SuitabilityAcceptable}, // 0.9× edge, inclusive
		{134.9, types.SuitabilityBorderline},
		{149.9, types.SuitabilityAcceptable},
	}

	for _, tt := range tests {
		got := classify(tt.tonnage, 150)
		if got != tt.want {
			t.Errorf("classify(%g, 150) = %s, want %s", tt.tonnage, got, tt.want)
		}
	}
}

func TestRecommendCap(t *testing.T) {
	var catalog []types.MachineSpec
	for i := 0; i < 10; i++ {
		catalog = append(catalog, machine(string(rune('a'+i)), 150+float64(i)*5, 500))
	}

	recs, err := Recommend(catalog, 150, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != maxRecommendations {
		t.Errorf("got %d recommendations, want cap %d", len(recs), maxRecommendations)
	}
	// Smallest adequate machine first within the ideal band.
	for i := 1; i < len(recs); i++ {
		if recs[i].Machine.TonnageT < recs[i-1].Machine.TonnageT {
			t.Errorf("recommendations not in ascending tonnage: %v before %v", recs[i-1].Machine.TonnageT, recs[i].Machine.TonnageT)
		}
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	recs, err := Recommend(nil, 150, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty recommendation list, got %d", len(recs))
	}
}

func TestRecommendInvalidInputs(t *testing.T) {
	catalog := []types.MachineSpec{machine("press-180", 180, 500)}

	if _, err := Recommend(catalog, 0, 100); !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("zero tonnage: error = %v, want INVALID_CONFIG", err)
	}
	if _, err := Recommend(catalog, 150, -1); !apperrors.IsType(err, apperrors.TypeConfig) {
		t.Errorf("negative shot volume: error = %v, want INVALID_CONFIG", err)
	}
}

func TestRecommendNotes(t *testing.T) {
	catalog := []types.MachineSpec{
		machine("press-140", 140, 110), // undersized clamp, 91% barrel use
		machine("press-400", 400, 500), // oversized
	}

	recs, err := Recommend(catalog, 150, 100)
	if err != nil {
		t.Fatal(err)
	}
	byID := map[string][]string{}
	for _, r := range recs {
		byID[r.Machine.ID] = r.Notes
	}
	if len(byID["press-140"]) != 2 {
		t.Errorf("press-140 notes = %v, want clamp and barrel notes", byID["press-140"])
	}
	if len(byID["press-400"]) != 1 {
		t.Errorf("press-400 notes = %v, want oversize note", byID["press-400"])
	}
}
