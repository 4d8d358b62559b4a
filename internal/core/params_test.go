package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("rows", "Rows", 50)}},
		{Name: "Run", Params: []Parameter{FloatParam("density", "Density", 0.25), TextParam("rule", "Rule", "B3/S23")}},
	}}
	p, ok := snap.Lookup("density")
	if !ok || p.Value != "0.25" || p.Type != ParamTypeFloat {
		t.Fatalf("Lookup(density) = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("rule"); !ok || p.Value != "B3/S23" {
		t.Fatalf("Lookup(rule) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup of a missing key must fail")
	}
}

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 240}
	cases := map[float64]float64{0: 1, 1: 1, 60: 60, 500: 240}
	for in, want := range cases {
		if got := c.Clamp(in); got != want {
			t.Fatalf("Clamp(%v) = %v, want %v", in, got, want)
		}
	}
}
