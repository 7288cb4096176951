package imperial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precision is the denominator of the finest tape graduation used when
// snapping a length onto the tape.
type Precision int

const (
	Eighth       Precision = 8
	Sixteenth    Precision = 16
	ThirtySecond Precision = 32

	// DefaultPrecision is used for decimal input and invalid precisions.
	DefaultPrecision = Sixteenth
)

// MaxInches bounds the magnitude of any length: every whole inch below it is
// exact as a float64 and it leaves headroom in int for the feet fold.
const MaxInches = 1 << 53

// InRange reports whether x is a finite number of inches whose magnitude is
// below MaxInches.
func InRange(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && math.Abs(x) < MaxInches
}

// Valid reports whether p is one of the supported graduations.
func (p Precision) Valid() bool {
	return p == Eighth || p == Sixteenth || p == ThirtySecond
}

// OrDefault returns p, or DefaultPrecision when p is not valid.
func (p Precision) OrDefault() Precision {
	if p.Valid() {
		return p
	}
	return DefaultPrecision
}

func (p Precision) String() string { return "1/" + strconv.Itoa(int(p)) }

// ParsePrecision accepts "8", "16", "32", "1/16", "eighth", "sixteenth" or
// "thirtysecond" (and their plurals).
func ParsePrecision(s string) (Precision, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	v = strings.TrimPrefix(v, "1/")
	switch v {
	case "8", "eighth":
		return Eighth, nil
	case "16", "sixteenth":
		return Sixteenth, nil
	case "32", "thirtysecond", "thirty-second":
		return ThirtySecond, nil
	}
	return 0, fmt.Errorf("unsupported precision %q (want 8, 16 or 32)", s)
}

// RoundToTapeMark snaps decimalInches to the nearest 1/precision of an inch.
// Exact halfway points round up, toward positive infinity.
func RoundToTapeMark(decimalInches float64, precision Precision) float64 {
	increment := 1 / float64(precision.OrDefault())
	return math.Floor(decimalInches/increment+0.5) * increment
}

// ToImperialMeasurement quantizes decimalInches to precision and splits it
// into whole inches and a fraction over precision, reduced to lowest terms
// when reduce is set. A zero fraction is always 0/1. Input that is not
// InRange yields Zero; callers that can fail check InRange first.
func ToImperialMeasurement(decimalInches float64, precision Precision, reduce bool) Measurement {
	if !InRange(decimalInches) {
		return Zero()
	}
	precision = precision.OrDefault()

	rounded := RoundToTapeMark(decimalInches, precision)
	whole := math.Floor(rounded)
	parts := int(math.Round((rounded - whole) * float64(precision)))
	inches := int(whole)
	if parts >= int(precision) {
		inches++
		parts -= int(precision)
	}

	if parts == 0 {
		return Measurement{Inches: inches, Denominator: 1}
	}
	n, d := parts, int(precision)
	if reduce {
		n, d = ReduceFraction(n, d)
	}
	return Measurement{Inches: inches, Numerator: n, Denominator: d}
}

// Round re-quantizes m onto the tape at precision.
func (m Measurement) Round(precision Precision, reduce bool) Measurement {
	return ToImperialMeasurement(ToDecimalInches(m), precision, reduce)
}
