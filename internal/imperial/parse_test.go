package imperial_test

import (
	"testing"

	"tapecalc/internal/imperial"
)

func TestParseInput(t *testing.T) {
	cases := []struct {
		in   string
		want imperial.Measurement
	}{
		{`5"`, m(5, 0, 1)},
		{`10"`, m(10, 0, 1)},
		{`5`, m(5, 0, 1)},
		{`10`, m(10, 0, 1)},
		{`1/2"`, m(0, 1, 2)},
		{`3/4"`, m(0, 3, 4)},
		{`5 1/2"`, m(5, 1, 2)},
		{`10 3/4"`, m(10, 3, 4)},
		{`5'`, m(60, 0, 1)},
		{`2'`, m(24, 0, 1)},
		{`5' 3"`, m(63, 0, 1)},
		{`2' 6"`, m(30, 0, 1)},
		{`5'3"`, m(63, 0, 1)},
		{`5' 3 1/2"`, m(63, 1, 2)},
		{`2' 6 3/4"`, m(30, 3, 4)},
		{`5' 1/2"`, m(60, 1, 2)},
		{`5 2/4"`, m(5, 1, 2)},
		{`5 8/16"`, m(5, 1, 2)},
		{`  5  1/2"  `, m(5, 1, 2)},
		{`5.625"`, m(5, 5, 8)},
		{`5.625`, m(5, 5, 8)},
		{`5."`, m(5, 0, 1)},
		{`5.03"`, m(5, 0, 1)},
		{`5 3/2"`, m(6, 1, 2)}, // improper fractions carry
		{`0"`, m(0, 0, 1)},
		{`-2 1/2"`, m(-3, 1, 2)},
		{`−5'`, m(-60, 0, 1)}, // U+2212 minus sign
		{`- 3/4"`, m(-1, 1, 4)},
		{"5½”", m(5, 1, 2)},       // vulgar fraction and curly quote
		{"5′ 3″", m(63, 0, 1)}, // prime marks
		{"１２＂", m(12, 0, 1)},       // full-width digits and quote
	}
	for _, c := range cases {
		got, ok := imperial.ParseInput(c.in)
		if !ok {
			t.Fatalf("ParseInput(%q) failed", c.in)
		}
		if got != c.want {
			t.Fatalf("ParseInput(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseInput_Rejects(t *testing.T) {
	for _, in := range []string{
		"", "   ", "abc", "5/", `5 1/0"`, `1/0"`, `5' 1/0"`, `5' 3 1/0"`,
		"-", "--5", `5"6`, `.5"`, "5 1/2", `5''`, "99999999999999999999999",
		`999999999999999999'`, `99999999999999999999.5"`, `9007199254740992"`,
		`750599937895082' 8"`, `1 18014398509481982/2"`,
	} {
		if got, ok := imperial.ParseInput(in); ok {
			t.Fatalf("ParseInput(%q) = %+v, want failure", in, got)
		}
	}
}

func TestParseInputPrecision_Decimal(t *testing.T) {
	got, ok := imperial.ParseInputPrecision("5.03", imperial.ThirtySecond)
	if !ok {
		t.Fatal("parse failed")
	}
	if got != m(5, 1, 32) {
		t.Fatalf("got %+v, want 5 1/32", got)
	}
	got, _ = imperial.ParseInputPrecision("5.2", imperial.Eighth)
	if got != m(5, 1, 4) {
		t.Fatalf("got %+v, want 5 1/4", got)
	}
}

func TestNotationOf(t *testing.T) {
	cases := map[string]string{
		`5' 3 1/2"`: "feet-inches-fraction",
		`5' 3"`:     "feet-inches",
		`5' 1/2"`:   "feet-fraction",
		`5'`:        "feet",
		`5 1/2"`:    "inches-fraction",
		`1/2"`:      "fraction",
		`5"`:        "inches",
		`5.5"`:      "decimal-inches",
		`5.5`:       "decimal",
		`5`:         "number",
		`-5`:        "number",
		`abc`:       "",
	}
	for in, want := range cases {
		if got := imperial.NotationOf(in); got != want {
			t.Fatalf("NotationOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	imperial.MustParse("nope")
}
