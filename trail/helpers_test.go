package trail

import "math"

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// sampleTrack is the three-point climb-and-descent used across tests:
// 0 m -> 100 m -> 50 m over two ~0.69 mi segments.
func sampleTrack() Track {
	return NewTrack([]Coordinate{
		Coord3(0, 0, 0),
		Coord3(0, 0.01, 100),
		Coord3(0, 0.02, 50),
	})
}

// straightTrack walks north from (lon, lat) in n steps of stepDeg degrees.
func straightTrack(lon, lat, stepDeg float64, n int, ele func(i int) Meters) Track {
	coords := make([]Coordinate, n)
	for i := range coords {
		coords[i] = Coord3(lon, lat+float64(i)*stepDeg, ele(i))
	}
	return NewTrack(coords)
}

func flat(int) Meters { return 0 }
