package main

import (
	"encoding/json"
	"fmt"
	"os"

	"trailstats/trail"
)

// geoJSONObject decodes a Feature, a FeatureCollection or a bare geometry.
// Positions are read as pointers so a null elevation stays missing.
type geoJSONObject struct {
	Type        string           `json:"type"`
	Properties  map[string]any   `json:"properties,omitempty"`
	Geometry    *geoJSONObject   `json:"geometry,omitempty"`
	Features    []*geoJSONObject `json:"features,omitempty"`
	Coordinates json.RawMessage  `json:"coordinates,omitempty"`
}

type geoJSONLineFeature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   geoJSONLine    `json:"geometry"`
}

type geoJSONLine struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

func parseGeoJSON(filePath string) (*TrackFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read GeoJSON file: %w", err)
	}
	tf, err := decodeGeoJSONTrack(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	tf.Path = filePath
	if tf.Name == "" {
		tf.Name = fileStem(filePath)
	}
	return tf, nil
}

func decodeGeoJSONTrack(data []byte) (*TrackFile, error) {
	var obj geoJSONObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}

	feature := &obj
	if obj.Type == "FeatureCollection" {
		feature = nil
		for _, f := range obj.Features {
			if f != nil && f.Geometry != nil && isLineGeometry(f.Geometry.Type) {
				feature = f
				break
			}
		}
		if feature == nil {
			return nil, errNoCoordinates
		}
	}

	geometry := feature
	if feature.Type == "Feature" {
		if feature.Geometry == nil {
			return nil, errNoCoordinates
		}
		geometry = feature.Geometry
	}

	coords, err := lineCoordinates(geometry)
	if err != nil {
		return nil, err
	}

	tf := &TrackFile{Track: trail.NewTrack(coords)}
	tf.Name, _ = feature.Properties["name"].(string)
	tf.Description, _ = feature.Properties["description"].(string)
	tf.Location, _ = feature.Properties["location"].(string)
	return tf, nil
}

func isLineGeometry(t string) bool {
	return t == "LineString" || t == "MultiLineString"
}

// lineCoordinates reads a LineString, or the first line of a MultiLineString.
func lineCoordinates(g *geoJSONObject) ([]trail.Coordinate, error) {
	var positions [][]*float64
	switch g.Type {
	case "LineString":
		if err := json.Unmarshal(g.Coordinates, &positions); err != nil {
			return nil, fmt.Errorf("invalid LineString coordinates: %w", err)
		}
	case "MultiLineString":
		var lines [][][]*float64
		if err := json.Unmarshal(g.Coordinates, &lines); err != nil {
			return nil, fmt.Errorf("invalid MultiLineString coordinates: %w", err)
		}
		if len(lines) > 0 {
			positions = lines[0]
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedGeometry, g.Type)
	}

	coords := make([]trail.Coordinate, 0, len(positions))
	for i, p := range positions {
		if len(p) < 2 || p[0] == nil || p[1] == nil {
			return nil, fmt.Errorf("position %d: expected [lon, lat] or [lon, lat, ele]", i)
		}
		c := trail.Coord(*p[0], *p[1])
		if len(p) > 2 && p[2] != nil {
			c.Elevation = trail.Meters(*p[2])
		}
		coords = append(coords, c)
	}
	if len(coords) == 0 {
		return nil, errNoCoordinates
	}
	return coords, nil
}

// writeGeoJSON stores tf as a single LineString Feature with
// [lon, lat] or [lon, lat, ele] positions.
func writeGeoJSON(filePath string, tf *TrackFile) error {
	coords := tf.Track.Coordinates()
	line := geoJSONLine{Type: "LineString", Coordinates: make([][]float64, len(coords))}
	for i, c := range coords {
		pos := []float64{c.Lon, c.Lat}
		if c.HasElevation() {
			pos = append(pos, float64(c.Elevation))
		}
		line.Coordinates[i] = pos
	}

	props := map[string]any{
		"name":        tf.Name,
		"description": tf.Description,
	}
	if tf.Location != "" {
		props["location"] = tf.Location
	}

	data, err := json.MarshalIndent(geoJSONLineFeature{Type: "Feature", Properties: props, Geometry: line}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
