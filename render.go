package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"trailstats/trail"
)

const maxMileLabels = 20

var (
	plotBackground = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}
	markerColor    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	startColor     = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
)

type box struct {
	x, y, w, h float64
}

func (b box) right() float64  { return b.x + b.w }
func (b box) bottom() float64 { return b.y + b.h }

func drawSlopeIcon(dc *gg.Context, x, y, size, lineWidth float64) {
	dc.Push()
	dc.Translate(x, y)
	dc.SetLineWidth(lineWidth)
	angle := gg.Radians(30)
	legX := size
	legY := size * math.Tan(angle)
	dc.MoveTo(legX, legY/2)
	dc.LineTo(0, legY/2)
	dc.LineTo(legX, -legY/2)
	dc.Stroke()
	dc.Pop()
}

// renderProfile draws the elevation chart: header with the summary,
// grade-colored profile with mile ticks, a track outline on the right and a
// grade legend along the bottom.
func renderProfile(tf *TrackFile, at *trail.AnalyzedTrack, args *Arguments, ttf *truetype.Font) image.Image {
	w, h := float64(args.ChartWidth), float64(args.ChartHeight)
	dc := gg.NewContext(args.ChartWidth, args.ChartHeight)
	dc.SetColor(args.BgColor)
	dc.Clear()

	titleSize := h / 18
	textSize := titleSize * 0.6
	titleFace := truetype.NewFace(ttf, &truetype.Options{Size: titleSize})
	textFace := truetype.NewFace(ttf, &truetype.Options{Size: textSize})
	margin := h / 20

	// --- Header ---
	dc.SetColor(args.TextColor)
	dc.SetFontFace(titleFace)
	dc.DrawStringAnchored(tf.Name, margin, margin, 0, 1)
	dc.SetFontFace(textFace)
	dc.DrawStringAnchored(formatSummary(at.Summary), margin, margin+titleSize*1.4, 0, 1)

	// --- Layout ---
	top := margin + titleSize*1.4 + textSize*2.5
	legendH := textSize * 2
	bottom := h - margin - legendH - textSize*2
	plotH := bottom - top
	if plotH <= 0 {
		return dc.Image()
	}
	plot := box{x: margin + textSize*4, y: top, w: w - 2*margin - textSize*4, h: plotH}
	if outline := plotH; plot.w-outline-margin >= w/2 {
		plot.w -= outline + margin
		drawOutline(dc, at, box{x: plot.right() + margin, y: top, w: outline, h: outline}, args, textFace)
	}

	drawProfile(dc, at, plot, args, textFace, textSize)
	drawLegend(dc, at.AggregateByGrade(), box{x: margin, y: h - margin - legendH, w: w - 2*margin, h: legendH}, args, textFace, textSize)

	return dc.Image()
}

func drawProfile(dc *gg.Context, at *trail.AnalyzedTrack, b box, args *Arguments, face font.Face, textSize float64) {
	dc.SetColor(plotBackground)
	dc.DrawRectangle(b.x, b.y, b.w, b.h)
	dc.Fill()

	dc.SetFontFace(face)
	if len(at.Profile) == 0 {
		dc.SetColor(args.TextColor)
		dc.DrawStringAnchored("No elevation data", b.x+b.w/2, b.y+b.h/2, 0.5, 0.5)
		return
	}

	minE, maxE := elevationRange(at.Profile)
	total := float64(at.Summary.Distance)
	if !(total > 0) {
		total = 1
	}
	xOf := func(d trail.Miles) float64 { return b.x + float64(d)/total*b.w }
	yOf := func(e trail.Feet) float64 { return b.bottom() - (float64(e)-minE)/(maxE-minE)*b.h }

	// Grade fill
	bins := trail.GradeBins()
	for i := 1; i < len(at.Profile); i++ {
		p1, p2 := at.Profile[i-1], at.Profile[i]
		if math.IsNaN(float64(p1.Elevation)) || math.IsNaN(float64(p2.Elevation)) {
			continue
		}
		bin := trail.BinFor(at.Grades[i])
		if bin < 0 {
			continue
		}
		dc.SetColor(bins[bin].Color)
		dc.MoveTo(xOf(p1.Distance), b.bottom())
		dc.LineTo(xOf(p1.Distance), yOf(p1.Elevation))
		dc.LineTo(xOf(p2.Distance), yOf(p2.Elevation))
		dc.LineTo(xOf(p2.Distance), b.bottom())
		dc.ClosePath()
		dc.Fill()
	}

	// Profile line, broken where elevation is missing
	dc.SetColor(args.LineColor)
	dc.SetLineWidth(2)
	penDown := false
	for _, p := range at.Profile {
		if math.IsNaN(float64(p.Elevation)) {
			penDown = false
			continue
		}
		if penDown {
			dc.LineTo(xOf(p.Distance), yOf(p.Elevation))
		} else {
			dc.MoveTo(xOf(p.Distance), yOf(p.Elevation))
			penDown = true
		}
	}
	dc.Stroke()

	// Mile ticks
	markers := at.MileMarkers()
	every := (len(markers) + maxMileLabels - 1) / maxMileLabels
	dc.SetLineWidth(1)
	for _, m := range markers {
		if m.Mile%every != 0 {
			continue
		}
		x := xOf(trail.Miles(m.Mile))
		label := strconv.Itoa(m.Mile)
		if m.Mile == 0 {
			label = m.Label
		} else {
			dc.SetColor(markerColor)
			dc.SetDash(4, 4)
			dc.DrawLine(x, b.y, x, b.bottom())
			dc.Stroke()
			dc.SetDash()
		}
		dc.SetColor(args.TextColor)
		dc.DrawStringAnchored(label, x, b.bottom()+textSize*0.4, 0.5, 1)
	}

	// Axis
	dc.SetColor(args.TextColor)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f ft", maxE), b.x-textSize*0.4, b.y, 1, 1)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f ft", minE), b.x-textSize*0.4, b.bottom(), 1, 0)
	dc.DrawStringAnchored("mi", b.right(), b.bottom()+textSize*0.4, 1, 1)
}

// elevationRange returns the padded vertical extent of the profile in feet.
func elevationRange(profile []trail.ProfilePoint) (float64, float64) {
	minE, maxE := math.Inf(1), math.Inf(-1)
	for _, p := range profile {
		e := float64(p.Elevation)
		if math.IsNaN(e) {
			continue
		}
		minE, maxE = math.Min(minE, e), math.Max(maxE, e)
	}
	if maxE-minE < 1 {
		minE, maxE = minE-50, maxE+50
	}
	pad := (maxE - minE) * 0.05
	return minE - pad, maxE + pad
}

// drawOutline draws the track in Web Mercator, north up, with mile markers.
func drawOutline(dc *gg.Context, at *trail.AnalyzedTrack, b box, args *Arguments, face font.Face) {
	line := trackLineString(at.Track)
	if len(line) < 2 {
		return
	}
	bound := line.Bound()
	minX, minY := deg2num(bound.Max.Lat(), bound.Min.Lon(), 0)
	maxX, maxY := deg2num(bound.Min.Lat(), bound.Max.Lon(), 0)
	span := math.Max(maxX-minX, maxY-minY)
	if !(span > 0) {
		span = 1
	}
	pad := b.w * 0.08
	scale := (b.w - 2*pad) / span
	offX := b.x + pad + (b.w-2*pad-(maxX-minX)*scale)/2
	offY := b.y + pad + (b.h-2*pad-(maxY-minY)*scale)/2
	project := func(lat, lon float64) (float64, float64) {
		px, py := deg2num(lat, lon, 0)
		return offX + (px-minX)*scale, offY + (py-minY)*scale
	}

	dc.SetColor(plotBackground)
	dc.DrawRectangle(b.x, b.y, b.w, b.h)
	dc.Fill()

	dc.SetColor(args.LineColor)
	dc.SetLineWidth(2)
	for i, p := range line {
		x, y := project(p.Lat(), p.Lon())
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	dc.SetFontFace(face)
	for _, m := range at.MileMarkers() {
		x, y := project(m.Coordinate.Lat, m.Coordinate.Lon)
		if m.Mile == 0 {
			dc.SetColor(startColor)
			dc.DrawPoint(x, y, 5)
			dc.Fill()
			continue
		}
		dc.SetColor(color.White)
		dc.DrawPoint(x, y, 3)
		dc.Fill()
		dc.SetColor(args.LineColor)
		dc.SetLineWidth(1)
		dc.DrawPoint(x, y, 3)
		dc.Stroke()
	}
}

func drawLegend(dc *gg.Context, agg trail.GradeAggregate, b box, args *Arguments, face font.Face, textSize float64) {
	dc.SetFontFace(face)
	dc.SetColor(args.TextColor)
	drawSlopeIcon(dc, b.x, b.y+b.h/2, textSize, textSize/8)

	x := b.x + textSize*1.8
	slot := (b.right() - x) / float64(len(agg.Bins))
	for _, bt := range agg.Bins {
		dc.SetColor(bt.Bin.Color)
		dc.DrawRectangle(x, b.y+b.h/2-textSize/2, textSize, textSize)
		dc.Fill()
		dc.SetColor(args.TextColor)
		dc.DrawStringAnchored(fmt.Sprintf("%s %.0f%%", bt.Bin.Label, bt.Percent), x+textSize*1.3, b.y+b.h/2, 0, 0.35)
		x += slot
	}
}

func formatSummary(s trail.Summary) string {
	if !s.HasElevation {
		return fmt.Sprintf("%.2f mi  ·  no elevation data", float64(s.Distance))
	}
	return fmt.Sprintf("%.2f mi  ·  %.0f ft gain  ·  %.2f mi flat-equivalent  ·  climb factor %.0f%%",
		float64(s.Distance), float64(s.ElevationGain), float64(s.EquivalentFlat), s.ClimbFactor*100)
}
