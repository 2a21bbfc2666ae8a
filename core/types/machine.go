package types

// MachineSpec is a read-only molding machine record from the catalog.
type MachineSpec struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer,omitempty"`

	// TonnageT is the clamp tonnage, metric tons
	TonnageT float64 `json:"tonnage_t"`

	// MaxShotVolumeCm3 is the maximum injectable volume per cycle, cm³
	MaxShotVolumeCm3 float64 `json:"max_shot_volume_cm3"`

	// ScrewDiameterMm is the injection screw diameter, mm
	ScrewDiameterMm float64 `json:"screw_diameter_mm,omitempty"`

	// Platen dimensions, mm
	PlatenWidthMm  float64 `json:"platen_width_mm"`
	PlatenHeightMm float64 `json:"platen_height_mm"`

	// Tie-bar spacing, mm
	TieBarHMm float64 `json:"tie_bar_spacing_h_mm"`
	TieBarVMm float64 `json:"tie_bar_spacing_v_mm"`

	// TypicalUse is a free-form sizing hint
	TypicalUse string `json:"typical_use,omitempty"`
}
