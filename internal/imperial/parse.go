package imperial

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// notation is one accepted spelling of a length. Patterns are tried in
// order; the first structural match decides the result.
type notation struct {
	name  string
	re    *regexp.Regexp
	build func(m []string, p Precision) (Measurement, bool)
}

var notations = []notation{
	{"feet-inches-fraction", regexp.MustCompile(`^(\d+)'\s*(\d+) (\d+)/(\d+)"$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts(m[1], m[2], m[3], m[4])
	}},
	{"feet-inches", regexp.MustCompile(`^(\d+)'\s*(\d+)"$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts(m[1], m[2], "", "")
	}},
	{"feet-fraction", regexp.MustCompile(`^(\d+)'\s*(\d+)/(\d+)"$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts(m[1], "", m[2], m[3])
	}},
	{"feet", regexp.MustCompile(`^(\d+)'$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts(m[1], "", "", "")
	}},
	{"inches-fraction", regexp.MustCompile(`^(\d+) (\d+)/(\d+)"$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts("", m[1], m[2], m[3])
	}},
	{"fraction", regexp.MustCompile(`^(\d+)/(\d+)"$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts("", "", m[1], m[2])
	}},
	{"inches", regexp.MustCompile(`^(\d+)"$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts("", m[1], "", "")
	}},
	{"decimal-inches", regexp.MustCompile(`^(\d+\.?\d*)"$`), fromDecimal},
	{"decimal", regexp.MustCompile(`^(\d+\.\d+)$`), fromDecimal},
	{"number", regexp.MustCompile(`^(\d+)$`), func(m []string, _ Precision) (Measurement, bool) {
		return fromParts("", m[1], "", "")
	}},
}

// ParseInput parses a length typed by a user, such as 5' 3 1/2", 2 1/2",
// 3/4", 5', 5.625" or 12. Decimal input is snapped to the nearest 1/16".
// A leading minus sign negates the whole length.
//
// ok is false for empty input, input matching no notation and fractions with
// a zero denominator.
func ParseInput(text string) (m Measurement, ok bool) {
	return ParseInputPrecision(text, DefaultPrecision)
}

// ParseInputPrecision is ParseInput with decimal input snapped to precision.
func ParseInputPrecision(text string, precision Precision) (Measurement, bool) {
	s := Clean(text)
	if s == "" {
		return Measurement{}, false
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(s[1:])
	}

	for _, n := range notations {
		sub := n.re.FindStringSubmatch(s)
		if sub == nil {
			continue
		}
		m, ok := n.build(sub, precision.OrDefault())
		if !ok {
			return Measurement{}, false
		}
		if negative {
			m = m.Neg()
		}
		return m, true
	}
	return Measurement{}, false
}

// NotationOf names the notation text was written in, or "" when it is not
// a length.
func NotationOf(text string) string {
	s := strings.TrimSpace(strings.TrimPrefix(Clean(text), "-"))
	for _, n := range notations {
		if n.re.MatchString(s) {
			return n.name
		}
	}
	return ""
}

// MustParse is ParseInput for trusted literals; it panics on bad input.
func MustParse(text string) Measurement {
	m, ok := ParseInput(text)
	if !ok {
		panic("imperial: cannot parse " + strconv.Quote(text))
	}
	return m
}

// Clean folds typographic and compatibility characters to the ASCII marks the
// parser understands and collapses whitespace. Vulgar fractions become
// " n/d", so 5½" reads as 5 1/2".
func Clean(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.Is(unicode.No, r) {
			if d := norm.NFKC.String(string(r)); strings.ContainsRune(d, '⁄') {
				b.WriteByte(' ')
				b.WriteString(d)
				continue
			}
		}
		b.WriteRune(r)
	}
	s := markReplacer.Replace(norm.NFKC.String(b.String()))
	return strings.Join(strings.Fields(s), " ")
}

// NFKC already maps full-width marks and spells ″ as ′′.
var markReplacer = strings.NewReplacer(
	"′′", `"`,
	"′", "'",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"⁄", "/",
	"−", "-",
)

func fromParts(feet, inches, num, den string) (Measurement, bool) {
	f, ok := atoi(feet)
	if !ok {
		return Measurement{}, false
	}
	in, ok := atoi(inches)
	if !ok {
		return Measurement{}, false
	}
	if in >= MaxInches || f > (MaxInches-1-in)/12 {
		return Measurement{}, false
	}
	total := f*12 + in
	if num == "" {
		return Measurement{Inches: total, Denominator: 1}, true
	}

	n, ok := atoi(num)
	if !ok {
		return Measurement{}, false
	}
	d, ok := atoi(den)
	if !ok || d == 0 || n/d >= MaxInches-total {
		return Measurement{}, false
	}
	return New(total, n, d), true
}

func fromDecimal(m []string, p Precision) (Measurement, bool) {
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || !InRange(v) {
		return Measurement{}, false
	}
	return ToImperialMeasurement(v, p, true), true
}

// atoi treats an empty component as zero.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
