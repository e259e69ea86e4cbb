package trail

import (
	"fmt"
	"math"
	"sort"
)

// DefaultTolerance is the hover radius used to match a map pointer to the track.
const DefaultTolerance Miles = 0.1

// Marker is a labeled point at a whole-mile distance from the start.
type Marker struct {
	Label      string
	Mile       int
	Coordinate Coordinate
}

// PointAtDistance returns the coordinate target miles along the track,
// interpolated within the straddling segment. Targets at or before the start
// return the first coordinate and targets past the end return the last one.
// ok is false only for an empty track.
func PointAtDistance(t Track, target Miles) (Coordinate, bool) {
	return pointOnCumulative(t.coords, CumulativeDistances(t), target)
}

func pointOnCumulative(coords []Coordinate, cum []Miles, target Miles) (Coordinate, bool) {
	n := len(coords)
	switch {
	case n == 0:
		return Coordinate{}, false
	case math.IsNaN(float64(target)):
		nan := math.NaN()
		return Coordinate{Lon: nan, Lat: nan, Elevation: Meters(nan)}, true
	case n == 1 || target <= 0:
		return coords[0], true
	}

	i := sort.Search(n, func(i int) bool { return cum[i] >= target })
	if i >= n {
		return coords[n-1], true
	}
	// cum[i-1] < target <= cum[i], so the segment has positive length.
	excess := cum[i] - target
	ratio := 1 - float64(excess/(cum[i]-cum[i-1]))
	return interpolate(coords[i-1], coords[i], ratio), true
}

func interpolate(a, b Coordinate, r float64) Coordinate {
	lerp := func(x, y float64) float64 { return x*(1-r) + y*r }
	c := Coordinate{Lon: lerp(a.Lon, b.Lon), Lat: lerp(a.Lat, b.Lat), Elevation: NoElevation()}
	if a.HasElevation() && b.HasElevation() {
		c.Elevation = Meters(lerp(float64(a.Elevation), float64(b.Elevation)))
	}
	return c
}

// MileMarkers returns a "Start" marker followed by one marker per whole mile
// covered by the track. An empty track has no markers.
func MileMarkers(t Track) []Marker {
	return mileMarkers(t.coords, CumulativeDistances(t))
}

func mileMarkers(coords []Coordinate, cum []Miles) []Marker {
	if len(coords) == 0 {
		return nil
	}
	markers := []Marker{{Label: "Start", Mile: 0, Coordinate: coords[0]}}
	total := cum[len(cum)-1]
	if math.IsInf(float64(total), 0) {
		return markers
	}
	for mile := 1; Miles(mile) <= total; mile++ {
		c, _ := pointOnCumulative(coords, cum, Miles(mile))
		markers = append(markers, Marker{Label: fmt.Sprintf("Mile %d", mile), Mile: mile, Coordinate: c})
	}
	return markers
}

// NearestIndex returns the index of the track point closest to (lat, lon) if
// it lies within tolerance. Ties go to the lowest index.
func NearestIndex(t Track, lat, lon float64, tolerance Miles) (int, bool) {
	return nearestLinear(t.coords, lat, lon, tolerance)
}

func nearestLinear(coords []Coordinate, lat, lon float64, tolerance Miles) (int, bool) {
	best := -1
	var bestDist Miles
	for i, c := range coords {
		d := GreatCircleDistanceMiles(lat, lon, c.Lat, c.Lon)
		if math.IsNaN(float64(d)) {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || !(bestDist <= tolerance) {
		return -1, false
	}
	return best, true
}

// IndexToCoordinate maps a profile index back to the map position.
func IndexToCoordinate(t Track, i int) (lat, lon float64, ok bool) {
	if i < 0 || i >= len(t.coords) {
		return 0, 0, false
	}
	c := t.coords[i]
	return c.Lat, c.Lon, true
}
