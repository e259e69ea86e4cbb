package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSummarizeTracks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_ridge.gpx", ridgeLoopGpx)
	writeFile(t, dir, "b_broken.geojson", `{"type":"Feature","geometry":null}`)
	writeFile(t, dir, "c_canyon.geojson", canyonFeature)
	writeFile(t, dir, "readme.md", "# not a track")

	paths, err := collectTrackPaths(dir)
	if err != nil {
		t.Fatalf("collectTrackPaths failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("found %d tracks, want 3: %v", len(paths), paths)
	}

	results := summarizeTracks(paths, 4, false)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Index != i || r.Path != paths[i] {
			t.Errorf("result %d out of order: %+v", i, r)
		}
	}
	if results[0].Err != nil || results[0].Name != "Ridge Loop" || results[0].Summary.Points != 3 {
		t.Errorf("ridge result = %+v", results[0])
	}
	if results[1].Err == nil {
		t.Error("broken file should report an error")
	}
	if results[2].Err != nil || results[2].Name != "Canyon Rim" {
		t.Errorf("canyon result = %+v", results[2])
	}

	var buf bytes.Buffer
	if err := printSummaryTable(&buf, results); err != nil {
		t.Fatal(err)
	}
	table := buf.String()
	for _, want := range []string{"TRACK", "Ridge Loop", "Canyon Rim", "error:"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}

	out := filepath.Join(t.TempDir(), "summary.json")
	if err := writeManifest(out, results); err != nil {
		t.Fatalf("writeManifest failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var entries []manifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if len(entries) != 2 || entries[0].File != "a_ridge.gpx" || entries[1].Name != "Canyon Rim" {
		t.Errorf("manifest = %+v", entries)
	}
	if entries[0].ElevationGainFt <= 0 {
		t.Errorf("ridge gain = %v", entries[0].ElevationGainFt)
	}
}

func TestSummarizeTracksSingleWorker(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"1.gpx", "2.gpx", "3.gpx", "4.gpx", "5.gpx"} {
		paths = append(paths, writeFile(t, dir, name, ridgeLoopGpx))
	}
	results := summarizeTracks(paths, 0, false)
	for i, r := range results {
		if r.Err != nil || r.Path != paths[i] {
			t.Errorf("result %d = %+v", i, r)
		}
	}
}

func TestCollectTrackPathsMissingDir(t *testing.T) {
	if _, err := collectTrackPaths(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error")
	}
}
