package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"trailstats/trail"
)

// --- Structs ---

// TrackFile is a loaded track with the metadata shown next to it.
type TrackFile struct {
	Path        string
	Name        string
	Description string
	Location    string
	Track       trail.Track
}

var (
	errNoCoordinates       = errors.New("no coordinates found")
	errUnsupportedGeometry = errors.New("unsupported geometry")
	errUnsupportedFormat   = errors.New("unsupported track format")
)

// --- Track Loading ---

func loadTrack(filePath string) (*TrackFile, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".gpx":
		return parseGpx(filePath)
	case ".geojson", ".json":
		return parseGeoJSON(filePath)
	}
	return nil, fmt.Errorf("%s: %w", filePath, errUnsupportedFormat)
}

func isTrackFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gpx", ".geojson", ".json":
		return true
	}
	return false
}

func parseGpx(filePath string) (*TrackFile, error) {
	gpxFile, err := gpx.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX file: %w", err)
	}
	return trackFromGpx(gpxFile, filePath)
}

// trackFromGpx joins every segment of every track into one line. Points
// without <ele> keep a missing elevation.
func trackFromGpx(gpxFile *gpx.GPX, filePath string) (*TrackFile, error) {
	var coords []trail.Coordinate
	for _, track := range gpxFile.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				c := trail.Coord(p.Longitude, p.Latitude)
				if p.Elevation.NotNull() {
					c.Elevation = trail.Meters(p.Elevation.Value())
				}
				coords = append(coords, c)
			}
		}
	}
	if len(coords) == 0 {
		return nil, fmt.Errorf("%s: %w", filePath, errNoCoordinates)
	}

	tf := &TrackFile{Path: filePath, Name: fileStem(filePath), Track: trail.NewTrack(coords)}
	if len(gpxFile.Tracks) > 0 {
		if name := strings.TrimSpace(gpxFile.Tracks[0].Name); name != "" {
			tf.Name = name
		}
		tf.Description = gpxFile.Tracks[0].Description
	}
	return tf, nil
}

func fileStem(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
