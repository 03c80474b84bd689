package util

import (
	"fmt"
	"math"
)

// FormatValueFactor prints an SI value with an engineering prefix.
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue >= 1e-15:
		return fmt.Sprintf("%.3f f%s", value*1e15, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatFrequency prints an energy given in GHz with the factor that
// keeps the mantissa readable. Charge dispersions can be ten orders
// below the qubit frequency, hence the deep small-value branches.
func FormatFrequency(ghz float64) string {
	abs := math.Abs(ghz)
	switch {
	case abs >= 1:
		return fmt.Sprintf("%8.3f GHz", ghz)
	case abs >= 1e-3:
		return fmt.Sprintf("%8.3f MHz", ghz*1e3)
	case abs >= 1e-6:
		return fmt.Sprintf("%8.3f kHz", ghz*1e6)
	case abs >= 1e-9:
		return fmt.Sprintf("%8.3f Hz ", ghz*1e9)
	case abs == 0:
		return fmt.Sprintf("%8.3f Hz ", 0.0)
	default:
		return fmt.Sprintf("%.3e GHz", ghz)
	}
}

// FormatRatio prints an EJ/EC ratio in fixed width for sweep tables.
func FormatRatio(r float64) string {
	return fmt.Sprintf("%7.2f", r)
}
