// Package units converts physical quantities between the canonical metric
// storage units and imperial display units. Conversion happens only at
// the display and input boundaries; everything sent to the server is
// metric.
package units

import "math"

const (
	lbPerKg = 2.2046226218487757
	cmPerIn = 2.54
)

func KgToLb(kg float64) float64 { return kg * lbPerKg }

func LbToKg(lb float64) float64 { return lb / lbPerKg }

func CmToIn(cm float64) float64 { return cm / cmPerIn }

func InToCm(in float64) float64 { return in * cmPerIn }

// Round1 rounds to one decimal place, the precision used everywhere a
// converted quantity is displayed or read back.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DisplayWeight returns the profile-facing weight value and its unit label.
func DisplayWeight(kg float64, imperial bool) (float64, string) {
	if imperial {
		return Round1(KgToLb(kg)), "lb"
	}
	return Round1(kg), "kg"
}

// DisplayHeight returns the profile-facing height value and its unit label.
func DisplayHeight(cm float64, imperial bool) (float64, string) {
	if imperial {
		return Round1(CmToIn(cm)), "in"
	}
	return Round1(cm), "cm"
}

// InputWeightKg converts a user-entered weight to canonical kilograms.
func InputWeightKg(value float64, imperial bool) float64 {
	if imperial {
		return LbToKg(value)
	}
	return value
}

// InputHeightCm converts a user-entered height to canonical centimeters.
func InputHeightCm(value float64, imperial bool) float64 {
	if imperial {
		return InToCm(value)
	}
	return value
}
