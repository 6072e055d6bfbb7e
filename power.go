package sgsolar

import (
	"math"
	"strconv"
	"strings"
)

// avgMonthlyYieldPerKWp is the empirical average monthly generation, in kWh,
// of one installed kWp. Dividing a monthly consumption by it suggests the
// system size needed to offset that consumption.
const avgMonthlyYieldPerKWp = 101.25

// digits strips everything but decimal digits, so "220V" and "63A" parse.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AvailablePowerKW derives the available power at the connection point from
// the nominal voltage, the breaker amperage and the connection type.
// Three-phase connections carry the extra √3 factor. The boolean is false
// when voltage or breaker cannot be parsed as numbers.
func AvailablePowerKW(voltage, breaker string, conn ConnectionType) (float64, bool) {
	v, errV := strconv.Atoi(digits(voltage))
	a, errA := strconv.Atoi(digits(breaker))
	if errV != nil || errA != nil {
		return 0, false
	}
	kw := float64(v) * float64(a) / 1000
	if conn == ThreePhase {
		kw *= math.Sqrt(3)
	}
	return kw, true
}

// SuggestedSystemKWp suggests a system size, in kWp, for a given average
// monthly consumption in kWh. The boolean is false for non-positive or
// unparsable input.
func SuggestedSystemKWp(avgConsumption string) (float64, bool) {
	c, err := strconv.ParseFloat(strings.TrimSpace(avgConsumption), 64)
	if err != nil || c <= 0 {
		return 0, false
	}
	return c / avgMonthlyYieldPerKWp, true
}
