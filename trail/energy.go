package trail

import "math"

// Treadmill-calibrated walking cost curve (Minetti et al.). The constants
// feed every equivalent-distance figure and must not be re-fitted.
const (
	costA = 26.07
	costB = 0.03104
	costC = 1.381
	costD = -0.06547
	costP = 2.181

	// recreationalCutoff caps the downhill benefit: slopes steeper than a
	// gentle decline cost the same as the decline itself.
	recreationalCutoff = -0.03

	minDenominator = 1e-9
	maxSlope       = 0.5
)

// EnergyCost returns the metabolic cost in J/kg/m of walking on slope i
// (rise over run, not percent). NaN propagates.
func EnergyCost(i float64) float64 {
	if i < recreationalCutoff {
		i = recreationalCutoff
	}
	den := costC + i + costD
	if math.Abs(den) < minDenominator {
		den = math.Copysign(minDenominator, den)
	}
	return costA * (math.Pow(math.Pow(math.Abs(i), costP)+costB, 1/costP) + i) / den
}
