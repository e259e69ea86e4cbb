package trail

import (
	"image/color"
	"math"
)

// GradeBin is a half-open grade range [Min, Max) in percent.
type GradeBin struct {
	Label string
	Min   float64
	Max   float64
	Color color.RGBA
}

func (b GradeBin) Contains(grade float64) bool {
	return grade >= b.Min && grade < b.Max
}

var gradeBins = []GradeBin{
	{Label: ">=25%", Min: 25, Max: math.Inf(1), Color: color.RGBA{0x8b, 0x00, 0x00, 0xff}},
	{Label: "20-25%", Min: 20, Max: 25, Color: color.RGBA{0xd7, 0x30, 0x27, 0xff}},
	{Label: "15-20%", Min: 15, Max: 20, Color: color.RGBA{0xf4, 0x6d, 0x43, 0xff}},
	{Label: "10-15%", Min: 10, Max: 15, Color: color.RGBA{0xfd, 0xae, 0x61, 0xff}},
	{Label: "5-10%", Min: 5, Max: 10, Color: color.RGBA{0xfe, 0xe0, 0x8b, 0xff}},
	{Label: "0-5%", Min: 0, Max: 5, Color: color.RGBA{0xd9, 0xef, 0x8b, 0xff}},
	{Label: "-5-0%", Min: -5, Max: 0, Color: color.RGBA{0x91, 0xcf, 0x60, 0xff}},
	{Label: "-10--5%", Min: -10, Max: -5, Color: color.RGBA{0x45, 0x75, 0xb4, 0xff}},
	{Label: "<-10%", Min: math.Inf(-1), Max: -10, Color: color.RGBA{0x31, 0x36, 0x95, 0xff}},
}

// GradeBins returns the fixed bins, steepest climb first.
func GradeBins() []GradeBin {
	bins := make([]GradeBin, len(gradeBins))
	copy(bins, gradeBins)
	return bins
}

// BinFor returns the index into GradeBins of the bin holding grade, or -1
// for NaN.
func BinFor(grade float64) int {
	for i, b := range gradeBins {
		if b.Contains(grade) {
			return i
		}
	}
	return -1
}

type BinTotal struct {
	Bin     GradeBin
	Miles   Miles
	Percent float64
}

type GradeAggregate struct {
	Bins       []BinTotal
	TotalMiles Miles
}

// AggregateByGrade adds each segment's horizontal length to the bin of
// grades[i], where i is the segment's end index (the GradePerPoint
// convention). Indices beyond len(grades) count as 0%. Segments with a NaN
// grade are left out of every bin but still count toward TotalMiles.
func AggregateByGrade(t Track, grades []float64) GradeAggregate {
	meters := make([]Meters, len(gradeBins))
	var total Meters
	for i := 1; i < len(t.coords); i++ {
		seg := segmentMiles(t.coords[i-1], t.coords[i]).Meters()
		total += seg

		var g float64
		if i < len(grades) {
			g = grades[i]
		}
		if bin := BinFor(g); bin >= 0 {
			meters[bin] += seg
		}
	}

	agg := GradeAggregate{
		Bins:       make([]BinTotal, len(gradeBins)),
		TotalMiles: total.Miles(),
	}
	for i, b := range gradeBins {
		bt := BinTotal{Bin: b, Miles: meters[i].Miles()}
		if total > 0 {
			bt.Percent = float64(meters[i]/total) * 100
		}
		agg.Bins[i] = bt
	}
	return agg
}
