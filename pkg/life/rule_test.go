package life

import (
	"errors"
	"slices"
	"testing"
)

func TestParseRule(t *testing.T) {
	cases := []struct {
		in      string
		birth   []int
		survive []int
	}{
		{"B3/S23", []int{3}, []int{2, 3}},
		{"b36/s23", []int{3, 6}, []int{2, 3}},
		{"HighLife B36/S23 ", []int{3, 6}, []int{2, 3}},
		{"B2/S0", []int{2}, []int{0}},
		{"B39/S238", []int{3}, []int{2, 3, 8}},
		{"B3378/S23", []int{3, 7, 8}, []int{2, 3}},
		{"B2/S", []int{2}, nil},
		{"B/S012345678", nil, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tc := range cases {
		r, err := ParseRule(tc.in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", tc.in, err)
		}
		if !slices.Equal(r.Birth.Values(), tc.birth) {
			t.Fatalf("ParseRule(%q) birth = %v, want %v", tc.in, r.Birth.Values(), tc.birth)
		}
		if !slices.Equal(r.Survive.Values(), tc.survive) {
			t.Fatalf("ParseRule(%q) survive = %v, want %v", tc.in, r.Survive.Values(), tc.survive)
		}
	}
}

func TestParseRuleRejects(t *testing.T) {
	for _, in := range []string{"", "23/3", "B3\\S23", "B3S23", "life", "B/S", "b/s"} {
		if _, err := ParseRule(in); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseRule(%q) err = %v, want ErrInvalidRule", in, err)
		}
	}
}

func TestParseRuleOrFallsBack(t *testing.T) {
	if got := ParseRuleOr("garbage", DefaultRule()); got != DefaultRule() {
		t.Fatalf("fallback = %s, want %s", got, DefaultRule())
	}
	if got := ParseRuleOr("B36/S23", DefaultRule()); got.String() != "B36/S23" {
		t.Fatalf("parsed = %s, want B36/S23", got)
	}
}

func TestRuleStringRoundTrip(t *testing.T) {
	for _, in := range []string{"B3/S23", "B36/S23", "B2/S", "B/S3", "B0/S8"} {
		r, err := ParseRule(in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", in, err)
		}
		if r.String() != in {
			t.Fatalf("round trip %q -> %q", in, r.String())
		}
	}
}

func TestRuleString(t *testing.T) {
	if got := DefaultRule().String(); got != "B3/S23" {
		t.Fatalf("DefaultRule = %s", got)
	}
	r := Rule{Birth: NewCounts(6, 3, 8), Survive: NewCounts()}
	if got := r.String(); got != "B368/S" {
		t.Fatalf("String = %s, want B368/S", got)
	}
}

func TestCountsIgnoresOutOfRange(t *testing.T) {
	c := NewCounts(-1, 0, 8, 9, 42)
	if !slices.Equal(c.Values(), []int{0, 8}) {
		t.Fatalf("Values = %v, want [0 8]", c.Values())
	}
	if c.Has(9) || c.Has(-1) {
		t.Fatal("out-of-range counts must never match")
	}
}

func TestCustomRuleStep(t *testing.T) {
	// Under B1/S nothing survives and every cell next to a single live cell is born.
	e := New(3, 3)
	e.Set(1, 1, true)
	res := e.Step(Rule{Birth: NewCounts(1)})
	if res.Population != 8 || e.Alive(1, 1) {
		t.Fatalf("B1/S: population %d, centre alive=%v", res.Population, e.Alive(1, 1))
	}
}
