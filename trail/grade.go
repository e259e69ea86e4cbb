package trail

import "math"

// GradePerPoint returns the signed grade in percent of the segment ending at
// each index. Index 0 has no incoming segment and is 0. Segments with zero
// horizontal length or a missing elevation at either end are also 0.
func GradePerPoint(t Track) []float64 {
	grades := make([]float64, len(t.coords))
	for i := 1; i < len(t.coords); i++ {
		grades[i] = segmentGrade(t.coords[i-1], t.coords[i])
	}
	return grades
}

func segmentGrade(a, b Coordinate) float64 {
	if !a.HasElevation() || !b.HasElevation() {
		return 0
	}
	run := float64(segmentMiles(a, b).Meters())
	if run == 0 {
		return 0
	}
	return float64(b.Elevation-a.Elevation) / run * 100
}

// EquivalentFlatDistance returns the flat-ground distance that costs the same
// energy as walking the track, per EnergyCost. Raw segment slopes are clamped
// to ±50% to reject GPS/DEM spikes.
func EquivalentFlatDistance(t Track) Miles {
	var energy float64
	for i := 1; i < len(t.coords); i++ {
		a, b := t.coords[i-1], t.coords[i]
		run := float64(segmentMiles(a, b).Meters())
		var rise float64
		if a.HasElevation() && b.HasElevation() {
			rise = float64(b.Elevation - a.Elevation)
		}

		var slope float64
		if run > 0 {
			slope = rise / run
		}
		slope = math.Max(-maxSlope, math.Min(maxSlope, slope))

		length := math.Hypot(run, rise)
		energy += EnergyCost(slope) * length
	}
	if energy == 0 {
		return 0
	}
	return Meters(energy / EnergyCost(0)).Miles()
}

// ClimbFactor is the share of effort spent on elevation change:
// 1 - distance/equivalentFlatDistance, clamped to [0, 1]. It is 0 when the
// equivalent distance is 0.
func ClimbFactor(t Track) float64 {
	return climbFactor(TotalDistance(t), EquivalentFlatDistance(t))
}

func climbFactor(distance, equivalent Miles) float64 {
	if equivalent == 0 {
		return 0
	}
	f := 1 - float64(distance/equivalent)
	return math.Max(0, math.Min(1, f))
}

// Summary holds the scalar metrics shown for a track.
type Summary struct {
	Points         int
	Distance       Miles
	ElevationGain  Feet
	EquivalentFlat Miles
	ClimbFactor    float64
	HasElevation   bool
}

// Summarize computes every Summary field from t.
func Summarize(t Track) Summary {
	dist := TotalDistance(t)
	eq := EquivalentFlatDistance(t)
	return Summary{
		Points:         t.Len(),
		Distance:       dist,
		ElevationGain:  ElevationGain(t),
		EquivalentFlat: eq,
		ClimbFactor:    climbFactor(dist, eq),
		HasElevation:   hasAnyElevation(t),
	}
}
