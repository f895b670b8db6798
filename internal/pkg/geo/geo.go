package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance in meters between two
// WGS84 coordinates given as decimal degrees.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Check is the outcome of a geofence evaluation. DistanceMeters is rounded to
// the nearest meter for display.
type Check struct {
	DistanceMeters int
	WithinRadius   bool
}

// CheckRadius evaluates whether the user coordinate falls inside the allowed
// radius around the target coordinate.
func CheckRadius(userLat, userLon, targetLat, targetLon float64, radiusMeters int) Check {
	distance := HaversineDistance(userLat, userLon, targetLat, targetLon)
	return Check{
		DistanceMeters: int(math.Round(distance)),
		WithinRadius:   distance <= float64(radiusMeters),
	}
}
