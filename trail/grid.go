package trail

import "math"

const (
	minCellDegrees = 1e-4
	// Query windows are widened slightly so rounding never drops a candidate.
	windowPad = 1.001
	// Closer to a pole than this, longitude windows degenerate.
	polarMargin = 1e-6
)

type cellKey struct{ x, y int }

// grid buckets track indices by a uniform lat/lon cell so nearest-point
// lookups only measure points near the query.
type grid struct {
	cell  float64
	cells map[cellKey][]int
}

func newGrid(coords []Coordinate) *grid {
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	n := 0
	for _, c := range coords {
		if !finite(c.Lat) || !finite(c.Lon) {
			continue
		}
		minLat, maxLat = math.Min(minLat, c.Lat), math.Max(maxLat, c.Lat)
		minLon, maxLon = math.Min(minLon, c.Lon), math.Max(maxLon, c.Lon)
		n++
	}

	g := &grid{cell: minCellDegrees, cells: make(map[cellKey][]int)}
	if n == 0 {
		return g
	}
	extent := math.Max(maxLat-minLat, maxLon-minLon)
	if cell := extent / math.Sqrt(float64(n)); cell > minCellDegrees {
		g.cell = cell
	}
	for i, c := range coords {
		if !finite(c.Lat) || !finite(c.Lon) {
			continue
		}
		k := g.key(c.Lat, c.Lon)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

func (g *grid) key(lat, lon float64) cellKey {
	return cellKey{x: int(math.Floor(lon / g.cell)), y: int(math.Floor(lat / g.cell))}
}

// nearest gives the same answer as nearestLinear. It falls back to the
// linear scan when a bounded window cannot be computed safely.
func (g *grid) nearest(coords []Coordinate, lat, lon float64, tolerance Miles) (int, bool) {
	tol := float64(tolerance)
	if !finite(lat) || !finite(lon) || !finite(tol) || tol < 0 {
		return nearestLinear(coords, lat, lon, tolerance)
	}

	delta := tol / EarthRadiusMiles
	phi := Radians(lat)
	if math.Abs(phi)+delta >= math.Pi/2-polarMargin {
		return nearestLinear(coords, lat, lon, tolerance)
	}
	dLat := Degrees(delta) * windowPad
	dLon := Degrees(math.Asin(math.Sin(delta)/math.Cos(phi))) * windowPad
	if lon-dLon < -180 || lon+dLon > 180 {
		return nearestLinear(coords, lat, lon, tolerance)
	}

	lo := g.key(lat-dLat, lon-dLon)
	hi := g.key(lat+dLat, lon+dLon)
	if float64(hi.x-lo.x+1)*float64(hi.y-lo.y+1) > float64(len(coords)) {
		return nearestLinear(coords, lat, lon, tolerance)
	}

	best := -1
	var bestDist Miles
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for _, i := range g.cells[cellKey{x, y}] {
				c := coords[i]
				d := GreatCircleDistanceMiles(lat, lon, c.Lat, c.Lon)
				if best < 0 || d < bestDist || (d == bestDist && i < best) {
					best, bestDist = i, d
				}
			}
		}
	}
	if best < 0 || !(bestDist <= tolerance) {
		return -1, false
	}
	return best, true
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
