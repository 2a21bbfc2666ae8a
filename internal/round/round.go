// Package round provides deterministic decimal rounding for reported
// figures. Results are serialized and compared byte-for-byte, so all
// rounding goes through decimal half-up arithmetic rather than float
// printf formatting.
package round

import "github.com/shopspring/decimal"

// To rounds v half-up to the given number of decimal places.
func To(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// ToOne rounds to one decimal place (times, tonnage, pressure).
func ToOne(v float64) float64 { return To(v, 1) }

// ToTwo rounds to two decimal places (diameters, weights).
func ToTwo(v float64) float64 { return To(v, 2) }
