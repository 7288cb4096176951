package imperial

import "math"

// Measurement is a length in folded form: whole inches plus a fraction of an
// inch. Feet are folded into Inches (5' 3" is Inches 63).
//
// The sign belongs to the whole value. Negative lengths keep Inches at the
// floor of the value and the fraction as the non-negative remainder, so
// -2 1/2" is {Inches: -3, Numerator: 1, Denominator: 2}. The decimal value is
// always Inches + Numerator/Denominator.
//
// A Denominator of 1 with Numerator 0 means "no fraction". A zero
// Denominator is tolerated and treated the same way.
//
// Parsing and arithmetic keep lengths below MaxInches in magnitude.
type Measurement struct {
	Inches      int `json:"inches"`
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// Zero returns the canonical zero length.
func Zero() Measurement { return Measurement{Denominator: 1} }

// Inches returns a whole-inch measurement.
func Inches(n int) Measurement { return Measurement{Inches: n, Denominator: 1} }

// New builds a measurement from whole inches and a fraction, carrying any
// improper or negative fraction into Inches and reducing it to lowest terms.
func New(inches, numerator, denominator int) Measurement {
	m := Measurement{Inches: inches, Numerator: numerator, Denominator: denominator}.canonical()
	m.Numerator, m.Denominator = ReduceFraction(m.Numerator, m.Denominator)
	return m
}

// ToDecimalInches returns m as a single number of inches. A zero denominator
// contributes nothing.
func ToDecimalInches(m Measurement) float64 {
	frac := 0.0
	if m.Denominator != 0 {
		frac = float64(m.Numerator) / float64(m.Denominator)
	}
	return float64(m.Inches) + frac
}

// Decimal is shorthand for ToDecimalInches(m).
func (m Measurement) Decimal() float64 { return ToDecimalInches(m) }

// IsZero reports whether m has no length.
func (m Measurement) IsZero() bool { return ToDecimalInches(m) == 0 }

// Negative reports whether m is below zero.
func (m Measurement) Negative() bool { return ToDecimalInches(m) < 0 }

// Neg returns -m without rounding. The stored fraction keeps its denominator.
func (m Measurement) Neg() Measurement {
	c := m.canonical()
	if c.Numerator == 0 {
		if c.Inches == math.MinInt {
			return Measurement{Inches: math.MaxInt, Denominator: 1}
		}
		return Measurement{Inches: -c.Inches, Denominator: 1}
	}
	return Measurement{
		Inches:      -c.Inches - 1,
		Numerator:   c.Denominator - c.Numerator,
		Denominator: c.Denominator,
	}
}

// Abs returns the magnitude of m.
func (m Measurement) Abs() Measurement {
	if m.Negative() {
		return m.Neg()
	}
	return m.canonical()
}

// Equal reports whether m and o describe the same length.
func (m Measurement) Equal(o Measurement) bool {
	a, b := m.canonical(), o.canonical()
	if a.Inches != b.Inches {
		return false
	}
	return a.Numerator*b.Denominator == b.Numerator*a.Denominator
}

// String renders m in reduced fraction form, e.g. 5 1/2".
func (m Measurement) String() string {
	return FormatImperialMeasurement(m, DisplayOptions{})
}

// canonical fixes the denominator sign, drops degenerate fractions and
// carries whole inches out of the fraction so that 0 <= Numerator <
// Denominator. The fraction is not reduced.
func (m Measurement) canonical() Measurement {
	n, d := m.Numerator, m.Denominator
	if d == 0 || n == 0 {
		return Measurement{Inches: m.Inches, Denominator: 1}
	}
	if d < 0 {
		n, d = -n, -d
	}
	carry := floorDiv(n, d)
	n -= carry * d
	if n == 0 {
		d = 1
	}
	return Measurement{Inches: m.Inches + carry, Numerator: n, Denominator: d}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
