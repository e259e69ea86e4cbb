package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

const ridgeLoopGpx = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="trailstats-test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Ridge Loop</name>
    <desc>Short test loop</desc>
    <trkseg>
      <trkpt lat="0" lon="0"><ele>0</ele></trkpt>
      <trkpt lat="0.01" lon="0"><ele>100</ele></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="0.02" lon="0"></trkpt>
    </trkseg>
  </trk>
</gpx>
`

const canyonFeature = `{
  "type": "Feature",
  "properties": {"name": "Canyon Rim", "description": "rim trail", "location": "Utah"},
  "geometry": {
    "type": "LineString",
    "coordinates": [[-109.9, 38.4, 1800], [-109.9, 38.41, 1850], [-109.9, 38.42, 1820]]
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testArguments() *Arguments {
	return &Arguments{
		OutputDir:   ".",
		Workers:     2,
		ChartWidth:  900,
		ChartHeight: 400,
		LineColor:   color.RGBA{0x1f, 0x4e, 0x79, 0xff},
		TextColor:   color.Black,
		BgColor:     color.White,
	}
}
