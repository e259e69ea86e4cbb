// Package trail turns a sequence of (lon, lat, elevation) samples into trip
// statistics and answers the along-track queries a map/chart pair needs to
// stay in sync.
//
// Every function is a pure transform over its arguments. Degenerate input
// (fewer than two points, no elevation) yields a documented zero or empty
// value instead of an error.
package trail

import "math"

// EarthRadiusMiles is the sphere radius used by GreatCircleDistanceMiles.
const EarthRadiusMiles = 3959.0

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// GreatCircleDistanceMiles returns the haversine distance between two points.
// All distance math in this package goes through here.
func GreatCircleDistanceMiles(latA, lonA, latB, lonB float64) Miles {
	la1 := Radians(latA)
	la2 := Radians(latB)
	dLat := Radians(latB - latA)
	dLon := Radians(lonB - lonA)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(la1)*math.Cos(la2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return Miles(EarthRadiusMiles * c)
}

func segmentMiles(a, b Coordinate) Miles {
	return GreatCircleDistanceMiles(a.Lat, a.Lon, b.Lat, b.Lon)
}
