package trail

// AnalyzedTrack holds the per-track arrays that the interactive queries read
// on every pointer move. Build it once with Analyze and pass it around; it is
// read-only afterwards and safe to share between goroutines. Callers must not
// modify the exported slices.
type AnalyzedTrack struct {
	Track      Track
	Cumulative []Miles
	Profile    []ProfilePoint
	Grades     []float64
	Summary    Summary

	index *grid
}

func Analyze(t Track) *AnalyzedTrack {
	return &AnalyzedTrack{
		Track:      t,
		Cumulative: CumulativeDistances(t),
		Profile:    ElevationProfile(t),
		Grades:     GradePerPoint(t),
		Summary:    Summarize(t),
		index:      newGrid(t.coords),
	}
}

// PointAtDistance is PointAtDistance over the precomputed distances,
// located by binary search.
func (a *AnalyzedTrack) PointAtDistance(target Miles) (Coordinate, bool) {
	return pointOnCumulative(a.Track.coords, a.Cumulative, target)
}

func (a *AnalyzedTrack) MileMarkers() []Marker {
	return mileMarkers(a.Track.coords, a.Cumulative)
}

// NearestIndex is NearestIndex answered from the spatial grid.
func (a *AnalyzedTrack) NearestIndex(lat, lon float64, tolerance Miles) (int, bool) {
	return a.index.nearest(a.Track.coords, lat, lon, tolerance)
}

func (a *AnalyzedTrack) IndexToCoordinate(i int) (lat, lon float64, ok bool) {
	return IndexToCoordinate(a.Track, i)
}

func (a *AnalyzedTrack) AggregateByGrade() GradeAggregate {
	return AggregateByGrade(a.Track, a.Grades)
}

// GradeAt returns the grade for index i, or false when i is out of range.
func (a *AnalyzedTrack) GradeAt(i int) (float64, bool) {
	if i < 0 || i >= len(a.Grades) {
		return 0, false
	}
	return a.Grades[i], true
}
