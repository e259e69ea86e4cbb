package main

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"

	"trailstats/trail"
)

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1f4e79")
	if err != nil {
		t.Fatalf("parseHexColor failed: %v", err)
	}
	if c != (color.RGBA{0x1f, 0x4e, 0x79, 0xff}) {
		t.Errorf("got %v", c)
	}
	if _, err := parseHexColor("blue"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestParseLatLon(t *testing.T) {
	lat, lon, err := parseLatLon(" 37.74, -119.53 ")
	if err != nil || lat != 37.74 || lon != -119.53 {
		t.Errorf("got %v,%v,%v", lat, lon, err)
	}
	for _, bad := range []string{"37.7", "a,b", "95,0", "0,181"} {
		if _, _, err := parseLatLon(bad); err == nil {
			t.Errorf("parseLatLon(%q) should fail", bad)
		}
	}
}

func TestDeg2num(t *testing.T) {
	x, y := deg2num(0, 0, 0)
	if math.Abs(x-0.5) > 1e-12 || math.Abs(y-0.5) > 1e-12 {
		t.Errorf("origin projects to %v,%v", x, y)
	}
	_, north := deg2num(45, 0, 0)
	if north >= y {
		t.Error("north should have a smaller tile y")
	}
}

func TestPrintReport(t *testing.T) {
	tf := &TrackFile{Name: "North Ridge", Location: "Oregon", Track: northboundTrack(31)}
	var buf bytes.Buffer
	printReport(&buf, tf, trail.Analyze(tf.Track))
	out := buf.String()
	for _, want := range []string{"North Ridge", "Oregon", "2.07 mi", "elevation gain", "grade breakdown", "0-5%"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	flat := &TrackFile{Name: "No Ele", Track: trail.NewTrack([]trail.Coordinate{trail.Coord(0, 0), trail.Coord(0, 1)})}
	printReport(&buf, flat, trail.Analyze(flat.Track))
	if !strings.Contains(buf.String(), "no data") {
		t.Errorf("report without elevation:\n%s", buf.String())
	}
}

func TestPrintNearest(t *testing.T) {
	at := trail.Analyze(northboundTrack(31))
	var buf bytes.Buffer
	printNearest(&buf, at, 44.0101, -121.0001, trail.DefaultTolerance)
	if !strings.Contains(buf.String(), "Nearest point #10") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	printNearest(&buf, at, 10, 10, trail.DefaultTolerance)
	if !strings.HasPrefix(buf.String(), "No track point within 0.10 mi") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrintPoints(t *testing.T) {
	var buf bytes.Buffer
	printPoints(&buf, trail.Analyze(northboundTrack(3)))
	if lines := strings.Count(buf.String(), "\n"); lines != 3 {
		t.Errorf("got %d lines", lines)
	}
}
