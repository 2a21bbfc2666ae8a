package types

// ViscosityClass is the coarse melt viscosity classification used by the
// fill and pressure models
type ViscosityClass string

const (
	ViscosityLow    ViscosityClass = "low"
	ViscosityMedium ViscosityClass = "medium"
	ViscosityHigh   ViscosityClass = "high"
)

// IsValid checks if the viscosity class is known
func (v ViscosityClass) IsValid() bool {
	switch v {
	case ViscosityLow, ViscosityMedium, ViscosityHigh:
		return true
	default:
		return false
	}
}

// ThermalClass distinguishes cooling behavior for the cycle time model
type ThermalClass string

const (
	Crystalline ThermalClass = "crystalline"
	Amorphous   ThermalClass = "amorphous"
)

// crystallineCategories are the polymer families that crystallize on
// cooling and therefore need longer cooling time.
var crystallineCategories = map[string]bool{
	"PP":  true,
	"PE":  true,
	"PA":  true,
	"POM": true,
	"PBT": true,
}

// ThermalClassFor maps a material category (ABS, PP, PC, ...) to its
// cooling behavior. Unknown categories are treated as amorphous.
func ThermalClassFor(category string) ThermalClass {
	if crystallineCategories[category] {
		return Crystalline
	}
	return Amorphous
}

// MaterialProperties is a read-only thermoplastic record from the catalog.
type MaterialProperties struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Grade        string `json:"grade,omitempty"`

	// Category is the polymer family (ABS, PP, PC, PA, ...)
	Category string `json:"category"`

	// Temperature ranges, °C
	MeltTempMinC float64 `json:"melt_temp_min_c"`
	MeltTempMaxC float64 `json:"melt_temp_max_c"`
	MoldTempMinC float64 `json:"mold_temp_min_c"`
	MoldTempMaxC float64 `json:"mold_temp_max_c"`

	// DensityGCm3 is the solid density, g/cm³
	DensityGCm3 float64 `json:"density_g_cm3"`

	// Shrinkage range, %
	ShrinkageMinPct float64 `json:"shrinkage_min_pct"`
	ShrinkageMaxPct float64 `json:"shrinkage_max_pct"`

	// MFI is the melt flow index, g/10min (informational)
	MFI float64 `json:"mfi,omitempty"`

	// Viscosity is the coarse viscosity class
	Viscosity ViscosityClass `json:"viscosity_class"`

	// MaxFlowLengthRatio is the material's fillability limit (L/t)
	MaxFlowLengthRatio float64 `json:"max_flow_length_ratio"`

	// Recommended cavity pressure range, MPa
	PressureMinMPa float64 `json:"recommended_pressure_min_mpa"`
	PressureMaxMPa float64 `json:"recommended_pressure_max_mpa"`

	// DataSource is the datasheet citation
	DataSource string `json:"source,omitempty"`
}

// ThermalClass returns the cooling behavior for this material
func (m MaterialProperties) ThermalClass() ThermalClass {
	return ThermalClassFor(m.Category)
}

// MidPressureMPa returns the midpoint of the recommended cavity pressure
// range, the base pressure for the injection pressure model.
func (m MaterialProperties) MidPressureMPa() float64 {
	return (m.PressureMinMPa + m.PressureMaxMPa) / 2
}
