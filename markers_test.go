package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"trailstats/trail"
)

func northboundTrack(points int) trail.Track {
	coords := make([]trail.Coordinate, points)
	for i := range coords {
		coords[i] = trail.Coord3(-121, 44+float64(i)*0.001, trail.Meters(1500+i))
	}
	return trail.NewTrack(coords)
}

func TestMarkerCollection(t *testing.T) {
	// 30 steps of 0.001° is ~2.07 mi
	tf := &TrackFile{Name: "North Ridge", Track: northboundTrack(31)}
	at := trail.Analyze(tf.Track)

	out := filepath.Join(t.TempDir(), "markers.geojson")
	if err := writeMarkers(out, markerCollection(tf, at)); err != nil {
		t.Fatalf("writeMarkers failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("output is not a FeatureCollection: %v", err)
	}
	if len(fc.Features) != 4 {
		t.Fatalf("got %d features, want line + Start + 2 miles", len(fc.Features))
	}

	if _, ok := fc.Features[0].Geometry.(orb.LineString); !ok {
		t.Errorf("first feature is %T, want LineString", fc.Features[0].Geometry)
	}
	if fc.Features[0].Properties.MustString("name") != "North Ridge" {
		t.Errorf("line name = %v", fc.Features[0].Properties["name"])
	}

	wantLabels := []string{"Start", "Mile 1", "Mile 2"}
	for i, want := range wantLabels {
		f := fc.Features[i+1]
		if got := f.Properties.MustString("label"); got != want {
			t.Errorf("feature %d label = %q, want %q", i+1, got, want)
		}
		if _, ok := f.Geometry.(orb.Point); !ok {
			t.Errorf("marker %d is %T", i, f.Geometry)
		}
	}
	start := fc.Features[1].Geometry.(orb.Point)
	if start.Lon() != -121 || start.Lat() != 44 {
		t.Errorf("start marker at %v", start)
	}
}

func TestMarkerCollectionSinglePoint(t *testing.T) {
	tf := &TrackFile{Name: "dot", Track: northboundTrack(1)}
	fc := markerCollection(tf, trail.Analyze(tf.Track))
	if len(fc.Features) != 1 {
		t.Errorf("single point track: %d features, want only Start", len(fc.Features))
	}
}
