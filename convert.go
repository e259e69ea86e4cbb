package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// --- GPX to GeoJSON Conversion ---

func convertGpxToGeoJSON(gpxPath, geojsonPath string) error {
	tf, err := parseGpx(gpxPath)
	if err != nil {
		return err
	}
	if err := writeGeoJSON(geojsonPath, tf); err != nil {
		return fmt.Errorf("failed to write %s: %w", geojsonPath, err)
	}
	return nil
}

// convertDirectory converts every *.gpx in inputDir into outputDir and
// returns how many files succeeded out of how many were found.
func convertDirectory(inputDir, outputDir string, showProgress bool) (int, int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, 0, fmt.Errorf("failed to create output directory: %w", err)
	}
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read input directory: %w", err)
	}

	var gpxFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".gpx") {
			gpxFiles = append(gpxFiles, filepath.Join(inputDir, e.Name()))
		}
	}
	sort.Strings(gpxFiles)
	if len(gpxFiles) == 0 {
		return 0, 0, nil
	}

	bar := newProgressBar(len(gpxFiles), "Converting", showProgress)
	converted := 0
	for _, gpxPath := range gpxFiles {
		out := filepath.Join(outputDir, fileStem(gpxPath)+".geojson")
		if err := convertGpxToGeoJSON(gpxPath, out); err != nil {
			log.Printf("Error converting %s: %v", gpxPath, err)
		} else {
			converted++
		}
		bar.Add(1)
	}
	return converted, len(gpxFiles), nil
}

// addLocation sets properties.location on an existing GeoJSON Feature and
// leaves everything else as it was.
func addLocation(geojsonPath, location string) error {
	data, err := os.ReadFile(geojsonPath)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode %s: %w", geojsonPath, err)
	}
	props, _ := doc["properties"].(map[string]any)
	if props == nil {
		props = make(map[string]any)
		doc["properties"] = props
	}
	props["location"] = location

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(geojsonPath, out, 0644)
}

func newProgressBar(n int, description string, visible bool) *progressbar.ProgressBar {
	if visible {
		return progressbar.Default(int64(n), description)
	}
	return progressbar.DefaultSilent(int64(n), description)
}
