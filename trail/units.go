package trail

// Meters, Feet and Miles keep the unit of a value in its type. Internal
// math runs in meters and degrees; Feet and Miles exist for results.
type (
	Meters float64
	Feet   float64
	Miles  float64
)

const (
	MetersPerMile = 1609.34
	FeetPerMeter  = 3.28084
)

func (m Meters) Feet() Feet   { return Feet(float64(m) * FeetPerMeter) }
func (m Meters) Miles() Miles { return Miles(float64(m) / MetersPerMile) }
func (f Feet) Meters() Meters { return Meters(float64(f) / FeetPerMeter) }
func (mi Miles) Meters() Meters {
	return Meters(float64(mi) * MetersPerMile)
}
