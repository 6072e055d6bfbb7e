package sgsolar

import (
	"fmt"
	"math"
)

// WGS84 ellipsoid parameters for the Transverse Mercator projection.
const (
	wgs84SemiMajor   = 6378137.0
	wgs84EccSquared  = 0.00669438
	utmScaleFactor   = 0.9996
	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0 // southern hemisphere offset
)

// UTM holds a Universal Transverse Mercator coordinate.
type UTM struct {
	ZoneNumber int
	ZoneLetter byte
	Easting    float64
	Northing   float64
}

// ZoneString renders the zone as shown on records, e.g. "22 J".
func (u UTM) ZoneString() string { return fmt.Sprintf("%d %c", u.ZoneNumber, u.ZoneLetter) }

// utmBands maps 8-degree latitude bands from 80°S to 72°N; I and O are
// skipped per the MGRS convention. X covers the wider 72°N–84°N band.
const utmBands = "CDEFGHJKLMNPQRSTUVW"

// LatitudeBand returns the UTM latitude band letter for lat. Latitudes
// outside the table (beyond 80°S or 84°N) fall back to 'J', the band of
// most of Brazil, which is what the registration form always assumed.
func LatitudeBand(lat float64) byte {
	if lat >= 72 && lat <= 84 {
		return 'X'
	}
	if lat >= -80 && lat < 72 {
		return utmBands[int(math.Floor((lat+80)/8))]
	}
	return 'J'
}

// ToUTM projects a WGS84 latitude/longitude pair (decimal degrees, signed)
// to UTM. The expansion terms follow the standard Transverse Mercator
// series; southern-hemisphere northings are offset by 10,000,000 m.
func ToUTM(lat, lon float64) UTM {
	zone := int(math.Floor((lon+180)/6)) + 1
	centralMeridian := float64((zone-1)*6 - 180 + 3)

	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180
	cmRad := centralMeridian * math.Pi / 180

	e2 := wgs84EccSquared
	a := wgs84SemiMajor

	sinLat, cosLat, tanLat := math.Sin(latRad), math.Cos(latRad), math.Tan(latRad)

	n := a / math.Sqrt(1-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := (e2 / (1 - e2)) * cosLat * cosLat
	A := cosLat * (lonRad - cmRad)

	m := a * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*latRad -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*latRad) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*latRad) -
		(35*e2*e2*e2/3072)*math.Sin(6*latRad))

	easting := utmScaleFactor*n*(A+(1-t+c)*A*A*A/6+
		(5-18*t+t*t+72*c-58*e2)*A*A*A*A*A/120) + utmFalseEasting
	northing := utmScaleFactor * (m + n*tanLat*(A*A/2+
		(5-t+9*c+4*c*c)*A*A*A*A/24+
		(61-58*t+t*t+600*c-330*e2)*A*A*A*A*A*A/720))
	if lat < 0 {
		northing += utmFalseNorthing
	}

	return UTM{ZoneNumber: zone, ZoneLetter: LatitudeBand(lat), Easting: easting, Northing: northing}
}
