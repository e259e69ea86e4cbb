package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"runtime"
	"strconv"
	"strings"

	"trailstats/trail"
)

// --- Structs ---

type Arguments struct {
	TrackPath   string
	OutputDir   string
	Workers     int
	Chart       bool
	Markers     bool
	ChartWidth  int
	ChartHeight int
	LineColor   color.Color
	TextColor   color.Color
	BgColor     color.Color
	Debug       bool
	JSON        bool

	Near      string
	NearLat   float64
	NearLon   float64
	HasNear   bool
	Tolerance trail.Miles

	Convert     string
	ConvertOut  string
	AddLocation string
	Location    string
}

// --- Argument Parsing ---

func parseArguments() *Arguments {
	args := &Arguments{}
	var lineColorStr, textColorStr, bgColorStr string
	var tolerance float64

	flag.StringVar(&args.TrackPath, "track", "", "GPX or GeoJSON track, or a directory of tracks for a batch summary.")
	flag.StringVar(&args.OutputDir, "o", ".", "Directory for generated charts and GeoJSON.")
	flag.IntVar(&args.Workers, "workers", runtime.NumCPU(), "Number of parallel workers for batch summaries.")
	flag.BoolVar(&args.Chart, "chart", false, "Render an elevation profile PNG.")
	flag.BoolVar(&args.Markers, "markers", false, "Write mile markers as GeoJSON.")
	flag.IntVar(&args.ChartWidth, "chart-width", 1200, "Chart width in pixels.")
	flag.IntVar(&args.ChartHeight, "chart-height", 500, "Chart height in pixels.")
	flag.StringVar(&lineColorStr, "line-color", "#1f4e79", "Color of the profile line and track outline (hex).")
	flag.StringVar(&textColorStr, "text-color", "#222222", "Color of chart text (hex).")
	flag.StringVar(&bgColorStr, "bg-color", "#FFFFFF", "Chart background color (hex).")
	flag.BoolVar(&args.Debug, "debug", false, "Print per-point distance, elevation and grade.")
	flag.BoolVar(&args.JSON, "json", false, "Batch mode: also write summary.json to the output directory.")
	flag.StringVar(&args.Near, "near", "", "Find the track point nearest to \"lat,lon\".")
	flag.Float64Var(&tolerance, "tolerance", float64(trail.DefaultTolerance), "Match radius in miles for -near.")
	flag.StringVar(&args.Convert, "convert", "", "GPX file or directory to convert to GeoJSON.")
	flag.StringVar(&args.ConvertOut, "convert-out", "", "Output file or directory for -convert.")
	flag.StringVar(&args.AddLocation, "add-location", "", "GeoJSON file to tag with -location.")
	flag.StringVar(&args.Location, "location", "", "Location text for -add-location.")

	flag.Parse()

	args.Tolerance = trail.Miles(tolerance)
	if args.Workers < 1 {
		args.Workers = 1
	}

	var err error
	if args.LineColor, err = parseHexColor(lineColorStr); err != nil {
		log.Printf("Warning: invalid -line-color %q, using black", lineColorStr)
	}
	if args.TextColor, err = parseHexColor(textColorStr); err != nil {
		log.Printf("Warning: invalid -text-color %q, using black", textColorStr)
	}
	if args.BgColor, err = parseHexColor(bgColorStr); err != nil {
		log.Printf("Warning: invalid -bg-color %q, using black", bgColorStr)
	}

	if args.Near != "" {
		args.NearLat, args.NearLon, err = parseLatLon(args.Near)
		if err != nil {
			log.Fatalf("Error parsing -near: %v", err)
		}
		args.HasNear = true
	}

	return args
}

func parseHexColor(s string) (color.Color, error) {
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return color.Black, err
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func parseLatLon(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat,lon\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("coordinate out of range: %v,%v", lat, lon)
	}
	return lat, lon, nil
}

// deg2num projects to Web Mercator tile coordinates at the given zoom.
func deg2num(lat, lon float64, zoom int) (float64, float64) {
	latRad := lat * math.Pi / 180
	n := math.Pow(2, float64(zoom))
	xtile := (lon + 180) / 360 * n
	ytile := (1 - math.Asinh(math.Tan(latRad))/math.Pi) / 2 * n
	return xtile, ytile
}
