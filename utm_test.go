package sgsolar

import (
	"math"
	"testing"
)

func TestLatitudeBand(t *testing.T) {
	tests := []struct {
		lat      float64
		expected byte
	}{
		{-30.0346, 'J'}, // Porto Alegre
		{-23.55, 'K'},   // São Paulo
		{-3.12, 'M'},    // Manaus
		{40.71, 'T'},    // New York
		{75, 'X'},       // wide polar band
		{-85, 'J'},      // below the table, falls back
		{89, 'J'},       // above it too
	}
	for _, tt := range tests {
		if got := LatitudeBand(tt.lat); got != tt.expected {
			t.Errorf("LatitudeBand(%v) = %c, want %c", tt.lat, got, tt.expected)
		}
	}
}

func TestToUTM(t *testing.T) {
	// Porto Alegre city center. Reference values computed with the same
	// WGS84 parameters; the tolerance absorbs rounding of the reference.
	u := ToUTM(-30.0346, -51.2177)

	if u.ZoneNumber != 22 {
		t.Errorf("zone = %d, want 22", u.ZoneNumber)
	}
	if u.ZoneLetter != 'J' {
		t.Errorf("band = %c, want J", u.ZoneLetter)
	}
	if got := u.ZoneString(); got != "22 J" {
		t.Errorf("ZoneString() = %q, want %q", got, "22 J")
	}
	if math.Abs(u.Easting-479000) > 500 {
		t.Errorf("easting = %.2f, want about 479000", u.Easting)
	}
	// Southern hemisphere: false northing applied.
	if math.Abs(u.Northing-6677400) > 2000 {
		t.Errorf("northing = %.2f, want about 6677400", u.Northing)
	}
}

func TestToUTMNorthernHemisphere(t *testing.T) {
	u := ToUTM(40.71, -74.0) // New York

	if u.ZoneNumber != 18 {
		t.Errorf("zone = %d, want 18", u.ZoneNumber)
	}
	if u.Northing > utmFalseNorthing/2 {
		t.Errorf("northern northing = %.2f, false northing must not be applied", u.Northing)
	}
	if u.Northing <= 0 {
		t.Errorf("northing = %.2f, want positive", u.Northing)
	}
}

func TestToUTMCentralMeridian(t *testing.T) {
	// On the central meridian of zone 22 (51°W) the easting is exactly the
	// false easting.
	u := ToUTM(-30, -51)
	if math.Abs(u.Easting-utmFalseEasting) > 0.01 {
		t.Errorf("easting on central meridian = %.4f, want %v", u.Easting, utmFalseEasting)
	}
}
