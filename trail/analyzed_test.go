package trail

import (
	"math/rand"
	"testing"
)

func TestAnalyzeMatchesFreeFunctions(t *testing.T) {
	tr := sampleTrack()
	a := Analyze(tr)

	if a.Summary != Summarize(tr) {
		t.Errorf("summary mismatch: %+v vs %+v", a.Summary, Summarize(tr))
	}
	if len(a.Profile) != 3 || len(a.Grades) != 3 || len(a.Cumulative) != 3 {
		t.Fatalf("unexpected lengths %d/%d/%d", len(a.Profile), len(a.Grades), len(a.Cumulative))
	}
	if g, ok := a.GradeAt(1); !ok || g != GradePerPoint(tr)[1] {
		t.Errorf("GradeAt(1) = %v,%v", g, ok)
	}
	if _, ok := a.GradeAt(5); ok {
		t.Error("GradeAt past end should fail")
	}
	agg := a.AggregateByGrade()
	if agg.TotalMiles != AggregateByGrade(tr, GradePerPoint(tr)).TotalMiles {
		t.Error("aggregate mismatch")
	}
	if lat, _, ok := a.IndexToCoordinate(2); !ok || lat != 0.02 {
		t.Errorf("IndexToCoordinate(2) lat = %v", lat)
	}
}

func TestAnalyzedPointAtDistance(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tr := randomTrack(r, 500, 37.7, -119.5)
	a := Analyze(tr)
	total := TotalDistance(tr)

	for i := 0; i < 200; i++ {
		target := Miles(r.Float64()*1.2-0.1) * total
		want, _ := PointAtDistance(tr, target)
		got, _ := a.PointAtDistance(target)
		if got != want {
			t.Fatalf("target %v: got %+v want %+v", target, got, want)
		}
	}

	want := MileMarkers(tr)
	got := a.MileMarkers()
	if len(got) != len(want) {
		t.Fatalf("markers: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("marker %d: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestAnalyzedNearestIndexMatchesLinear(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	tolerances := []Miles{0, 0.01, DefaultTolerance, 0.5, 5}
	for trial := 0; trial < 10; trial++ {
		tr := randomTrack(r, 400, r.Float64()*140-70, r.Float64()*340-170)
		a := Analyze(tr)
		for q := 0; q < 200; q++ {
			c := tr.At(r.Intn(tr.Len()))
			lat := c.Lat + (r.Float64()-0.5)*0.02
			lon := c.Lon + (r.Float64()-0.5)*0.02
			tol := tolerances[q%len(tolerances)]

			wantIdx, wantOK := NearestIndex(tr, lat, lon, tol)
			gotIdx, gotOK := a.NearestIndex(lat, lon, tol)
			if gotIdx != wantIdx || gotOK != wantOK {
				t.Fatalf("trial %d q %d tol %v: grid %d,%v linear %d,%v", trial, q, tol, gotIdx, gotOK, wantIdx, wantOK)
			}
		}
	}
}

func TestAnalyzedNearestIndexEdgeCases(t *testing.T) {
	// near the antimeridian and the pole the grid falls back to a full scan
	tr := NewTrack([]Coordinate{Coord(179.9995, 10), Coord(-179.9995, 10), Coord(0, 89.9999), Coord(90, 89.9999)})
	a := Analyze(tr)
	queries := [][2]float64{{10, 179.9999}, {10, -179.9999}, {89.99995, 45}, {89.9999, 0}}
	for _, q := range queries {
		wantIdx, wantOK := NearestIndex(tr, q[0], q[1], DefaultTolerance)
		gotIdx, gotOK := a.NearestIndex(q[0], q[1], DefaultTolerance)
		if gotIdx != wantIdx || gotOK != wantOK {
			t.Errorf("query %v: grid %d,%v linear %d,%v", q, gotIdx, gotOK, wantIdx, wantOK)
		}
	}

	empty := Analyze(Track{})
	if _, ok := empty.NearestIndex(0, 0, 1); ok {
		t.Error("empty analyzed track matched")
	}
}

func BenchmarkNearestIndex(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tr := randomTrack(r, 20000, 46, 7)
	a := Analyze(tr)
	c := tr.At(12345)

	b.Run("linear", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			NearestIndex(tr, c.Lat, c.Lon, DefaultTolerance)
		}
	})
	b.Run("grid", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a.NearestIndex(c.Lat, c.Lon, DefaultTolerance)
		}
	})
}
