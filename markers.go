package main

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"trailstats/trail"
)

func trackLineString(t trail.Track) orb.LineString {
	ls := make(orb.LineString, 0, t.Len())
	for _, c := range t.Coordinates() {
		ls = append(ls, orb.Point{c.Lon, c.Lat})
	}
	return ls
}

// markerCollection builds the map overlay: the track line with its summary
// as properties, then a point per mile marker.
func markerCollection(tf *TrackFile, at *trail.AnalyzedTrack) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := trackLineString(at.Track)
	if len(line) >= 2 {
		f := geojson.NewFeature(line)
		f.Properties["name"] = tf.Name
		f.Properties["distance_mi"] = float64(at.Summary.Distance)
		f.Properties["elevation_gain_ft"] = float64(at.Summary.ElevationGain)
		f.Properties["equivalent_flat_mi"] = float64(at.Summary.EquivalentFlat)
		f.Properties["climb_factor"] = at.Summary.ClimbFactor
		fc.Append(f)
		fc.BBox = geojson.NewBBox(line.Bound())
	}

	for _, m := range at.MileMarkers() {
		f := geojson.NewFeature(orb.Point{m.Coordinate.Lon, m.Coordinate.Lat})
		f.Properties["label"] = m.Label
		f.Properties["mile"] = m.Mile
		if m.Coordinate.HasElevation() {
			f.Properties["elevation_ft"] = float64(m.Coordinate.Elevation.Feet())
		}
		fc.Append(f)
	}
	return fc
}

func writeMarkers(filePath string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode markers: %w", err)
	}
	return os.WriteFile(filePath, data, 0644)
}
