package trail

import "math"

// elevationNoiseFeet is the smallest climb between two samples that counts
// toward elevation gain.
const elevationNoiseFeet = 5.0

// ProfilePoint is one entry of an elevation profile.
type ProfilePoint struct {
	Distance  Miles
	Elevation Feet
}

// TotalDistance sums the great-circle length of every segment. Tracks with
// fewer than two points have length 0.
func TotalDistance(t Track) Miles {
	var total Miles
	for i := 1; i < len(t.coords); i++ {
		total += segmentMiles(t.coords[i-1], t.coords[i])
	}
	return total
}

// CumulativeDistances returns the running distance at every index. The first
// entry is 0 and the sequence never decreases.
func CumulativeDistances(t Track) []Miles {
	if len(t.coords) == 0 {
		return nil
	}
	cum := make([]Miles, len(t.coords))
	for i := 1; i < len(t.coords); i++ {
		cum[i] = cum[i-1] + segmentMiles(t.coords[i-1], t.coords[i])
	}
	return cum
}

// ElevationGain returns total climb in feet. Climbs of 5 ft or less between
// consecutive samples are treated as sensor noise, and the result is never
// below the net rise from the first sample to the highest one. Samples
// without elevation are skipped; fewer than two usable samples give 0.
func ElevationGain(t Track) Feet {
	var (
		first, prev, highest float64
		n                    int
		gain                 float64
	)
	for _, c := range t.coords {
		if !c.HasElevation() {
			continue
		}
		e := float64(c.Elevation)
		if n == 0 {
			first, highest = e, e
		} else {
			diff := e - prev
			if Meters(diff).Feet() > elevationNoiseFeet {
				gain += diff
			}
			highest = math.Max(highest, e)
		}
		prev = e
		n++
	}
	if n < 2 {
		return 0
	}
	return Meters(math.Max(gain, highest-first)).Feet()
}

// ElevationProfile pairs each coordinate's cumulative distance with its
// elevation in feet. Samples without elevation carry NaN. The result is empty
// when no coordinate has elevation, which callers use to hide the chart.
func ElevationProfile(t Track) []ProfilePoint {
	if !hasAnyElevation(t) {
		return []ProfilePoint{}
	}
	profile := make([]ProfilePoint, len(t.coords))
	var dist Miles
	for i, c := range t.coords {
		if i > 0 {
			dist += segmentMiles(t.coords[i-1], c)
		}
		profile[i] = ProfilePoint{Distance: dist, Elevation: c.Elevation.Feet()}
	}
	return profile
}

func hasAnyElevation(t Track) bool {
	for _, c := range t.coords {
		if c.HasElevation() {
			return true
		}
	}
	return false
}
