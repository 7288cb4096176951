package imperial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DisplayFormat selects how fractions are rendered.
type DisplayFormat int

const (
	// Reduced renders the fraction exactly as stored (normally lowest terms).
	Reduced DisplayFormat = iota
	// Sixteenths re-expresses every fraction over 16, e.g. 1/2" as 8/16".
	Sixteenths
)

func (f DisplayFormat) String() string {
	if f == Sixteenths {
		return "sixteenths"
	}
	return "reduced"
}

// ParseDisplayFormat accepts "reduced" or "sixteenths".
func ParseDisplayFormat(s string) (DisplayFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reduced", "exact":
		return Reduced, nil
	case "sixteenths", "16ths", "16":
		return Sixteenths, nil
	}
	return Reduced, fmt.Errorf("unknown display format %q (want reduced or sixteenths)", s)
}

// DisplayOptions controls FormatImperialMeasurement.
type DisplayOptions struct {
	Format DisplayFormat `json:"format" yaml:"format"`
	// Feet splits lengths of a foot or more into feet and inches.
	Feet bool `json:"feet" yaml:"feet"`
}

// FormatImperialMeasurement renders m for a tape measure, e.g. 5 1/2",
// 3/4" or 0". With opts.Feet, 63 1/2" renders as 5' 3 1/2" and 60" as 5'.
// Negative lengths get a single leading minus sign.
func FormatImperialMeasurement(m Measurement, opts DisplayOptions) string {
	negative := m.Negative()
	mag := m.Abs()

	inches, num, den := mag.Inches, mag.Numerator, mag.Denominator
	if opts.Format == Sixteenths && num != 0 {
		num = int(math.Round(float64(num) / float64(den) * 16))
		den = 16
		if num >= 16 {
			inches++
			num -= 16
		}
	}

	feet := 0
	if opts.Feet && inches >= 12 {
		feet, inches = inches/12, inches%12
	}

	var parts []string
	if inches != 0 {
		parts = append(parts, strconv.Itoa(inches))
	}
	if num != 0 {
		parts = append(parts, strconv.Itoa(num)+"/"+strconv.Itoa(den))
	}

	var out string
	switch {
	case feet > 0 && len(parts) == 0:
		out = strconv.Itoa(feet) + "'"
	case feet > 0:
		out = strconv.Itoa(feet) + "' " + strings.Join(parts, " ") + `"`
	case len(parts) == 0:
		return `0"`
	default:
		out = strings.Join(parts, " ") + `"`
	}
	if negative {
		out = "-" + out
	}
	return out
}

// FormatAsDecimal renders m in decimal inches rounded to four places, e.g.
// 5.3333". Zero renders as 0.0".
func FormatAsDecimal(m Measurement) string {
	v := math.Floor(ToDecimalInches(m)*10000+0.5) / 10000
	if v == 0 {
		return `0.0"`
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + `"`
}
