package geo

import "math"

// Point is a WGS-84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const earthRadiusMeters = 6371000

// Distance returns the great-circle distance between two points in meters,
// using the haversine formula. Coordinates are taken as-is; range checking
// is the caller's job.
func Distance(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180.0)

	latARad := a.Lat * (math.Pi / 180.0)
	latBRad := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Fence is a circular geofence around a center point.
type Fence struct {
	Center  Point
	RadiusM float64
}

// Check measures the distance from p to the fence center and reports whether
// p falls inside the fence. The boundary itself counts as inside.
func (f Fence) Check(p Point) (distanceM float64, ok bool) {
	distanceM = Distance(f.Center, p)
	return distanceM, distanceM <= f.RadiusM
}
