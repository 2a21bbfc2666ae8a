// Package units holds the unit conversion factors used by the formula
// library. Conversion factors live here and nowhere else, so mm/cm/MPa/ton
// discipline is auditable in one place.
package units

import "math"

// KNPerMetricTon converts clamp force in kN to metric tons
// (standard gravity, 9.80665 m/s²).
const KNPerMetricTon = 9.80665

// Cm2ToMm2 converts an area from cm² to mm².
func Cm2ToMm2(areaCm2 float64) float64 {
	return areaCm2 * 100
}

// Cm3ToMm3 converts a volume from cm³ to mm³.
func Cm3ToMm3(volumeCm3 float64) float64 {
	return volumeCm3 * 1000
}

// Mm3ToCm3 converts a volume from mm³ to cm³.
func Mm3ToCm3(volumeMm3 float64) float64 {
	return volumeMm3 / 1000
}

// Mm2ToCm2 converts an area from mm² to cm².
func Mm2ToCm2(areaMm2 float64) float64 {
	return areaMm2 / 100
}

// KNToMetricTons converts a force from kN to metric tons.
func KNToMetricTons(forceKN float64) float64 {
	return forceKN / KNPerMetricTon
}

// CircleAreaMm2 returns the area of a circle from its diameter in mm.
func CircleAreaMm2(diameterMm float64) float64 {
	r := diameterMm / 2
	return math.Pi * r * r
}
