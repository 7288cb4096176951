package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tapecalc/internal/imperial"
)

// Mode names a layout algorithm.
type Mode string

const (
	ModeDivide  Mode = "divide"
	ModeCustom  Mode = "custom"
	ModeSpacing Mode = "spacing"
)

// ParseMode accepts divide, custom (or interval) and spacing (or even).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "divide", "division", "divisions":
		return ModeDivide, nil
	case "custom", "interval", "intervals":
		return ModeCustom, nil
	case "spacing", "even", "even-spacing":
		return ModeSpacing, nil
	}
	return "", fmt.Errorf("unknown layout mode %q", s)
}

const (
	// MaxMarks bounds the custom-interval generator.
	MaxMarks = 100

	// MaxDivisions bounds divide and even-spacing layouts. Requests above it
	// yield no marks.
	MaxDivisions = 1000
)

// DefaultCap is the end of a custom-interval layout when no total length is
// given: 25 feet.
var DefaultCap = imperial.Inches(300)

// Plan is a computed layout ready for display.
type Plan struct {
	Mode  Mode                   `json:"mode"`
	Marks []imperial.Measurement `json:"marks"`
	// Spacing is the distance between consecutive marks: the division size,
	// the fixed interval or the adjusted even spacing.
	Spacing imperial.Measurement `json:"spacing"`
}

// Empty reports whether the plan has no marks.
func (p Plan) Empty() bool { return len(p.Marks) == 0 }

// Divide splits total minus offset into n equal parts and returns the n marks
// at offset + k*size for k = 1..n. There is no mark at the offset itself.
func Divide(total, offset imperial.Measurement, n int, precision imperial.Precision) []imperial.Measurement {
	marks, _ := divide(total, offset, n, precision)
	return marks
}

func divide(total, offset imperial.Measurement, n int, precision imperial.Precision) ([]imperial.Measurement, float64) {
	if n <= 0 || n > MaxDivisions {
		return nil, 0
	}
	start := imperial.ToDecimalInches(offset)
	size := (imperial.ToDecimalInches(total) - start) / float64(n)

	marks := make([]imperial.Measurement, 0, n)
	for k := 1; k <= n; k++ {
		pos := start + size*float64(k)
		if !imperial.InRange(pos) {
			return nil, 0
		}
		marks = append(marks, snap(pos, precision))
	}
	return marks, size
}

// Custom returns marks at start + k*interval for k = 1, 2, ... while the
// position does not pass limit, stopping after MaxMarks marks.
func Custom(interval, start, limit imperial.Measurement, precision imperial.Precision) []imperial.Measurement {
	step := imperial.ToDecimalInches(interval)
	if step <= 0 {
		return nil
	}
	from, end := imperial.ToDecimalInches(start), imperial.ToDecimalInches(limit)

	var marks []imperial.Measurement
	for k := 1; len(marks) < MaxMarks; k++ {
		pos := from + step*float64(k)
		if pos > end {
			break
		}
		if !imperial.InRange(pos) {
			return nil
		}
		marks = append(marks, snap(pos, precision))
	}
	return marks
}

// EvenSpacing places marks from first to last with a spacing as close as
// possible to desired while landing exactly on both ends. The number of
// intervals is span/desired rounded half away from zero; when that is zero
// only the two end points are returned.
//
// last must be beyond first and desired must be positive.
func EvenSpacing(first, last, desired imperial.Measurement, precision imperial.Precision) []imperial.Measurement {
	marks, _ := evenSpacing(first, last, desired, precision)
	return marks
}

func evenSpacing(first, last, desired imperial.Measurement, precision imperial.Precision) ([]imperial.Measurement, float64) {
	p0, p1 := imperial.ToDecimalInches(first), imperial.ToDecimalInches(last)
	want := imperial.ToDecimalInches(desired)
	if p1 <= p0 || want <= 0 {
		return nil, 0
	}

	span := p1 - p0
	if !imperial.InRange(span) {
		return nil, 0
	}
	n := math.Round(span / want)
	if n == 0 {
		return []imperial.Measurement{snap(p0, precision), snap(p1, precision)}, span
	}
	if n > MaxDivisions {
		return nil, 0
	}

	count := int(n)
	spacing := span / n
	marks := make([]imperial.Measurement, 0, count+1)
	for k := 0; k <= count; k++ {
		marks = append(marks, snap(p0+spacing*float64(k), precision))
	}
	return marks, spacing
}

// DivideText is Divide over raw user input. offset may be empty.
func DivideText(total, offset, divisions string, precision imperial.Precision) Plan {
	plan := Plan{Mode: ModeDivide}

	t, ok := imperial.ParseInputPrecision(total, precision)
	if !ok {
		return plan
	}
	o, ok := optional(offset, imperial.Zero(), precision)
	if !ok {
		return plan
	}
	n, err := strconv.Atoi(strings.TrimSpace(divisions))
	if err != nil {
		return plan
	}

	marks, size := divide(t, o, n, precision)
	if len(marks) == 0 {
		return plan
	}
	plan.Marks, plan.Spacing = marks, snap(size, precision)
	return plan
}

// CustomText is Custom over raw user input. start defaults to 0" and limit
// to DefaultCap when empty.
func CustomText(interval, start, limit string, precision imperial.Precision) Plan {
	plan := Plan{Mode: ModeCustom}

	i, ok := imperial.ParseInputPrecision(interval, precision)
	if !ok {
		return plan
	}
	s, ok := optional(start, imperial.Zero(), precision)
	if !ok {
		return plan
	}
	c, ok := optional(limit, DefaultCap, precision)
	if !ok {
		return plan
	}

	marks := Custom(i, s, c, precision)
	if len(marks) == 0 {
		return plan
	}
	plan.Marks, plan.Spacing = marks, i.Round(precision, true)
	return plan
}

// EvenSpacingText is EvenSpacing over raw user input. All fields are
// required.
func EvenSpacingText(first, last, desired string, precision imperial.Precision) Plan {
	plan := Plan{Mode: ModeSpacing}

	f, ok := imperial.ParseInputPrecision(first, precision)
	if !ok {
		return plan
	}
	l, ok := imperial.ParseInputPrecision(last, precision)
	if !ok {
		return plan
	}
	d, ok := imperial.ParseInputPrecision(desired, precision)
	if !ok {
		return plan
	}

	marks, spacing := evenSpacing(f, l, d, precision)
	if len(marks) == 0 {
		return plan
	}
	plan.Marks, plan.Spacing = marks, snap(spacing, precision)
	return plan
}

// Request is a layout described by raw text fields, as submitted over the
// API or the command line. Fields a mode does not use are ignored.
type Request struct {
	Mode Mode `json:"mode"`

	Total     string `json:"total,omitempty"`
	Offset    string `json:"offset,omitempty"`
	Divisions string `json:"divisions,omitempty"`

	Interval string `json:"interval,omitempty"`
	Start    string `json:"start,omitempty"`

	First   string `json:"first,omitempty"`
	Last    string `json:"last,omitempty"`
	Desired string `json:"desired,omitempty"`
}

// Build runs the layout named by r.Mode. An unknown mode is an error; bad
// field values give an empty plan.
func Build(r Request, precision imperial.Precision) (Plan, error) {
	switch r.Mode {
	case ModeDivide:
		return DivideText(r.Total, r.Offset, r.Divisions, precision), nil
	case ModeCustom:
		return CustomText(r.Interval, r.Start, r.Total, precision), nil
	case ModeSpacing:
		return EvenSpacingText(r.First, r.Last, r.Desired, precision), nil
	}
	return Plan{}, fmt.Errorf("unknown layout mode %q", r.Mode)
}

func optional(text string, fallback imperial.Measurement, precision imperial.Precision) (imperial.Measurement, bool) {
	if strings.TrimSpace(text) == "" {
		return fallback, true
	}
	return imperial.ParseInputPrecision(text, precision)
}

func snap(inches float64, precision imperial.Precision) imperial.Measurement {
	return imperial.ToImperialMeasurement(inches, precision, true)
}
