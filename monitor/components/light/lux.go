// Package light converts photoresistor samples to illuminance.
//
// The photoresistor sits in a voltage divider with a 2 kΩ fixed resistor on a
// 5 V rail sampled by a 10-bit ADC. Resistance maps to lux through the
// power law R = RL10 * (10/lux)^GAMMA, whose constants describe the
// GL5528-class cell in use.
package light

import "math"

const (
	Gamma       = 0.7
	RL10        = 50 // kΩ at 10 lux
	Vref        = 5.0
	FixedOhms   = 2000.0
	Resolution  = 1024
	maxSample   = Resolution - 1
	calibration = RL10 * 1e3
)

// Voltage returns the divider voltage for an ADC sample.
func Voltage(analog int) float64 {
	return float64(analog) / Resolution * Vref
}

// Resistance returns the photoresistor resistance in ohms for an ADC sample.
func Resistance(analog int) float64 {
	v := Voltage(analog)
	return FixedOhms * v / (1 - v/Vref)
}

// Lux returns the illuminance for an ADC sample. Samples outside the ADC
// range yield NaN.
func Lux(analog int) float64 {
	if analog < 0 || analog > maxSample {
		return math.NaN()
	}
	return math.Pow(calibration*math.Pow(10, Gamma)/Resistance(analog), 1/Gamma)
}

// AnalogForLux returns the ADC sample that reads closest to lux.
func AnalogForLux(lux float64) int {
	if math.IsNaN(lux) || lux <= 0 {
		return maxSample
	}
	r := calibration * math.Pow(10, Gamma) / math.Pow(lux, Gamma)
	// inverse of Resistance: v/Vref = r / (Vref*FixedOhms + r)
	x := r / (Vref*FixedOhms + r)
	a := int(math.Round(x * Resolution))
	if a < 0 {
		return 0
	}
	if a > maxSample {
		return maxSample
	}
	return a
}
