package units

import "math"

// Conversion factors shared by every stage of the sizing pipeline.
const (
	HoursPerYear = 8760.0
	DaysPerYear  = 365.0
	KWhPerTWh    = 1e9
	GWhPerTWh    = 1000.0
	MWPerGW      = 1000.0
	KWPerGW      = 1e6
	MWhPerTWh    = 1e6
	GramsPerMt   = 1e12 // g → megatonnes
	JoulesPerGWh = 3.6e12
)

// GramsToMt converts grams of CO₂e to megatonnes.
func GramsToMt(g float64) float64 {
	return g / GramsPerMt
}

// TWhEmissionsMt returns the Mt CO₂e emitted by producing twh at gPerKWh.
func TWhEmissionsMt(twh, gPerKWh float64) float64 {
	return GramsToMt(twh * KWhPerTWh * gPerKWh)
}

// Quotient is the outcome of a guarded division. Defined is false when the
// denominator was zero or a result would not be finite.
type Quotient struct {
	Value   float64
	Defined bool
}

// Div divides num by den without ever producing Inf or NaN.
func Div(num, den float64) Quotient {
	if den == 0 || !finite(num) || !finite(den) {
		return Quotient{}
	}
	v := num / den
	if !finite(v) {
		return Quotient{}
	}
	return Quotient{Value: v, Defined: true}
}

// Or returns the quotient, or fallback when the division was undefined.
func (q Quotient) Or(fallback float64) float64 {
	if !q.Defined {
		return fallback
	}
	return q.Value
}

// NonNegative floors v at zero.
func NonNegative(v float64) float64 {
	if v < 0 || !finite(v) {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
