package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"trailstats/trail"
)

// --- Main Logic ---

func main() {
	args := parseArguments()

	switch {
	case args.AddLocation != "":
		if err := addLocation(args.AddLocation, args.Location); err != nil {
			log.Fatalf("Error adding location: %v", err)
		}
		fmt.Printf("Added location %q to %s\n", args.Location, args.AddLocation)
	case args.Convert != "":
		runConvert(args)
	case args.TrackPath == "":
		log.Fatal("No input given. Use -track, -convert or -add-location.")
	default:
		info, err := os.Stat(args.TrackPath)
		if err != nil {
			log.Fatalf("Error reading track: %v", err)
		}
		if info.IsDir() {
			runBatch(args)
		} else {
			runSingle(args)
		}
	}
}

func runConvert(args *Arguments) {
	info, err := os.Stat(args.Convert)
	if err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
	if info.IsDir() {
		out := args.ConvertOut
		if out == "" {
			out = args.Convert
		}
		ok, total, err := convertDirectory(args.Convert, out, true)
		if err != nil {
			log.Fatalf("Error converting directory: %v", err)
		}
		if total == 0 {
			fmt.Printf("No GPX files found in %s\n", args.Convert)
			return
		}
		fmt.Printf("\nConverted %d/%d files successfully!\n", ok, total)
		return
	}

	out := args.ConvertOut
	if out == "" {
		out = filepath.Join(filepath.Dir(args.Convert), fileStem(args.Convert)+".geojson")
	}
	if err := convertGpxToGeoJSON(args.Convert, out); err != nil {
		log.Fatalf("Error converting %s: %v", args.Convert, err)
	}
	fmt.Printf("Converted: %s -> %s\n", args.Convert, out)
}

func runBatch(args *Arguments) {
	paths, err := collectTrackPaths(args.TrackPath)
	if err != nil {
		log.Fatalf("Error listing tracks: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No GPX or GeoJSON files in %s", args.TrackPath)
	}

	log.Printf("Summarizing %d tracks with %d workers...", len(paths), args.Workers)
	results := summarizeTracks(paths, args.Workers, true)
	fmt.Println()
	if err := printSummaryTable(os.Stdout, results); err != nil {
		log.Fatalf("Error writing summary: %v", err)
	}

	if args.JSON {
		out := filepath.Join(args.OutputDir, "summary.json")
		if err := writeManifest(out, results); err != nil {
			log.Fatalf("Error writing %s: %v", out, err)
		}
		log.Printf("Saved %s", out)
	}
}

func runSingle(args *Arguments) {
	tf, err := loadTrack(args.TrackPath)
	if err != nil {
		log.Fatalf("Error loading track: %v", err)
	}
	if tf.Track.Len() < 2 {
		log.Printf("Warning: %s has a single point; distances will be zero", tf.Path)
	}

	at := trail.Analyze(tf.Track)
	printReport(os.Stdout, tf, at)

	if args.Debug {
		printPoints(os.Stdout, at)
	}
	if args.HasNear {
		printNearest(os.Stdout, at, args.NearLat, args.NearLon, args.Tolerance)
	}

	if args.Chart || args.Markers {
		if err := os.MkdirAll(args.OutputDir, 0755); err != nil {
			log.Fatalf("Error creating output directory: %v", err)
		}
	}

	if args.Chart {
		ttf, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.Fatal(err)
		}
		img := renderProfile(tf, at, args, ttf)
		out := filepath.Join(args.OutputDir, fileStem(tf.Path)+"_profile.png")
		if err := gg.SavePNG(out, img); err != nil {
			log.Fatalf("Error saving chart: %v", err)
		}
		log.Printf("Saved %s", out)
	}

	if args.Markers {
		out := filepath.Join(args.OutputDir, fileStem(tf.Path)+"_markers.geojson")
		if err := writeMarkers(out, markerCollection(tf, at)); err != nil {
			log.Fatalf("Error saving markers: %v", err)
		}
		log.Printf("Saved %s", out)
	}
}

// --- Report Output ---

func printReport(w io.Writer, tf *TrackFile, at *trail.AnalyzedTrack) {
	s := at.Summary
	fmt.Fprintf(w, "%s\n", tf.Name)
	if tf.Location != "" {
		fmt.Fprintf(w, "  location:        %s\n", tf.Location)
	}
	fmt.Fprintf(w, "  points:          %d\n", s.Points)
	fmt.Fprintf(w, "  distance:        %.2f mi\n", float64(s.Distance))
	if !s.HasElevation {
		fmt.Fprintln(w, "  elevation:       no data")
		return
	}
	fmt.Fprintf(w, "  elevation gain:  %.0f ft\n", float64(s.ElevationGain))
	fmt.Fprintf(w, "  flat-equivalent: %.2f mi\n", float64(s.EquivalentFlat))
	fmt.Fprintf(w, "  climb factor:    %.1f%%\n", s.ClimbFactor*100)

	fmt.Fprintln(w, "  grade breakdown:")
	for _, bt := range at.AggregateByGrade().Bins {
		if bt.Miles == 0 {
			continue
		}
		fmt.Fprintf(w, "    %-8s %6.2f mi  %5.1f%%\n", bt.Bin.Label, float64(bt.Miles), bt.Percent)
	}
}

func printPoints(w io.Writer, at *trail.AnalyzedTrack) {
	for i := 0; i < at.Track.Len(); i++ {
		c := at.Track.At(i)
		ele := "-"
		if c.HasElevation() {
			ele = fmt.Sprintf("%.0f ft", float64(c.Elevation.Feet()))
		}
		fmt.Fprintf(w, "Point %d: Lat %.6f, Lon %.6f, Dist %.3f mi, Ele %s, Grade %.1f%%\n",
			i, c.Lat, c.Lon, float64(at.Cumulative[i]), ele, at.Grades[i])
	}
}

func printNearest(w io.Writer, at *trail.AnalyzedTrack, lat, lon float64, tolerance trail.Miles) {
	i, ok := at.NearestIndex(lat, lon, tolerance)
	if !ok {
		fmt.Fprintf(w, "No track point within %.2f mi of %.6f,%.6f\n", float64(tolerance), lat, lon)
		return
	}
	pLat, pLon, _ := at.IndexToCoordinate(i)
	grade, _ := at.GradeAt(i)
	fmt.Fprintf(w, "Nearest point #%d at %.6f,%.6f: mile %.2f, grade %.1f%%",
		i, pLat, pLon, float64(at.Cumulative[i]), grade)
	if c := at.Track.At(i); c.HasElevation() {
		fmt.Fprintf(w, ", elevation %.0f ft", float64(c.Elevation.Feet()))
	}
	fmt.Fprintln(w)
}
