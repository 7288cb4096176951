package imperial_test

import (
	"math"
	"strings"
	"testing"

	"tapecalc/internal/imperial"
)

func TestFormatImperialMeasurement(t *testing.T) {
	feet := imperial.DisplayOptions{Feet: true}
	sixteenths := imperial.DisplayOptions{Format: imperial.Sixteenths}

	cases := []struct {
		in   imperial.Measurement
		opts imperial.DisplayOptions
		want string
	}{
		{m(5, 0, 1), imperial.DisplayOptions{}, `5"`},
		{m(0, 0, 1), imperial.DisplayOptions{}, `0"`},
		{m(0, 1, 2), imperial.DisplayOptions{}, `1/2"`},
		{m(0, 3, 4), imperial.DisplayOptions{}, `3/4"`},
		{m(5, 1, 2), imperial.DisplayOptions{}, `5 1/2"`},
		{m(10, 3, 4), imperial.DisplayOptions{}, `10 3/4"`},
		{m(5, 8, 16), imperial.DisplayOptions{}, `5 8/16"`}, // stored fraction as is
		{m(5, 1, 0), imperial.DisplayOptions{}, `5"`},
		{m(-3, 1, 2), imperial.DisplayOptions{}, `-2 1/2"`},
		{m(-1, 1, 4), imperial.DisplayOptions{}, `-3/4"`},
		{m(5, 1, 2), sixteenths, `5 8/16"`},
		{m(5, 1, 32), sixteenths, `5 1/16"`}, // 0.5/16 rounds half up
		{m(5, 31, 32), sixteenths, `6"`},
		{m(0, 1, 64), sixteenths, `0"`},
		{m(60, 0, 1), feet, `5'`},
		{m(63, 1, 2), feet, `5' 3 1/2"`},
		{m(60, 1, 2), feet, `5' 1/2"`},
		{m(11, 0, 1), feet, `11"`},
		{m(-64, 0, 1), feet, `-5' 4"`},
		{m(63, 1, 2), imperial.DisplayOptions{Format: imperial.Sixteenths, Feet: true}, `5' 3 8/16"`},
	}
	for _, c := range cases {
		if got := imperial.FormatImperialMeasurement(c.in, c.opts); got != c.want {
			t.Fatalf("Format(%+v, %+v) = %q, want %q", c.in, c.opts, got, c.want)
		}
	}
}

func TestFormatImperialMeasurement_MinInt(t *testing.T) {
	got := imperial.FormatImperialMeasurement(imperial.Measurement{Inches: math.MinInt, Denominator: 1}, imperial.DisplayOptions{})
	if strings.HasPrefix(got, "--") || !strings.HasPrefix(got, "-") {
		t.Fatalf("got %q, want a single minus", got)
	}
}

func TestFormatAsDecimal(t *testing.T) {
	cases := []struct {
		in   imperial.Measurement
		want string
	}{
		{m(5, 1, 2), `5.5"`},
		{m(10, 3, 4), `10.75"`},
		{m(0, 0, 1), `0.0"`},
		{m(5, 1, 3), `5.3333"`},
		{m(12, 0, 1), `12"`},
		{m(-3, 1, 2), `-2.5"`},
	}
	for _, c := range cases {
		if got := imperial.FormatAsDecimal(c.in); got != c.want {
			t.Fatalf("FormatAsDecimal(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDisplayFormat(t *testing.T) {
	if f, err := imperial.ParseDisplayFormat("sixteenths"); err != nil || f != imperial.Sixteenths {
		t.Fatalf("got %v, %v", f, err)
	}
	if f, err := imperial.ParseDisplayFormat(""); err != nil || f != imperial.Reduced {
		t.Fatalf("got %v, %v", f, err)
	}
	if _, err := imperial.ParseDisplayFormat("metric"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParserFormatterAgreement(t *testing.T) {
	for _, in := range []string{`5 1/2"`, `3/4"`, `12"`, `0"`, `-2 1/2"`, `100 15/16"`} {
		got := imperial.FormatImperialMeasurement(imperial.MustParse(in), imperial.DisplayOptions{})
		if got != in {
			t.Fatalf("format(parse(%q)) = %q", in, got)
		}
	}
	for _, in := range []string{`5'`, `5' 3 1/2"`, `8' 1/4"`} {
		got := imperial.FormatImperialMeasurement(imperial.MustParse(in), imperial.DisplayOptions{Feet: true})
		if got != in {
			t.Fatalf("format(parse(%q)) with feet = %q", in, got)
		}
	}
	a, _ := imperial.ParseInput(`5 2/4"`)
	b, _ := imperial.ParseInput(`5 1/2"`)
	if a != b {
		t.Fatalf("5 2/4 and 5 1/2 parse differently: %+v vs %+v", a, b)
	}
}
