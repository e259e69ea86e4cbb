package trail

import "math"

// Coordinate is one track sample in degrees and meters. A missing elevation
// is NaN, never zero, so "no data" stays distinct from sea level.
type Coordinate struct {
	Lon       float64
	Lat       float64
	Elevation Meters
}

// NoElevation is the value stored for a sample without elevation.
func NoElevation() Meters { return Meters(math.NaN()) }

func Coord(lon, lat float64) Coordinate {
	return Coordinate{Lon: lon, Lat: lat, Elevation: NoElevation()}
}

func Coord3(lon, lat float64, ele Meters) Coordinate {
	return Coordinate{Lon: lon, Lat: lat, Elevation: ele}
}

func (c Coordinate) HasElevation() bool {
	e := float64(c.Elevation)
	return !math.IsNaN(e) && !math.IsInf(e, 0)
}

// Track is an ordered, immutable sequence of coordinates describing one
// trail. The zero Track is empty.
type Track struct {
	coords []Coordinate
}

// NewTrack copies coords; later changes to the slice do not affect the track.
func NewTrack(coords []Coordinate) Track {
	cp := make([]Coordinate, len(coords))
	copy(cp, coords)
	return Track{coords: cp}
}

func (t Track) Len() int { return len(t.coords) }

func (t Track) At(i int) Coordinate { return t.coords[i] }

// Coordinates returns a copy of the samples.
func (t Track) Coordinates() []Coordinate {
	cp := make([]Coordinate, len(t.coords))
	copy(cp, t.coords)
	return cp
}
