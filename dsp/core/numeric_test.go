package core

import (
	"math"
	"testing"
)

func TestLinearToDB(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "unity", in: 1, want: 0},
		{name: "tenth", in: 0.1, want: -20},
		{name: "ten", in: 10, want: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToDB(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("LinearToDB(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestFloorDB(t *testing.T) {
	in := []float64{0, -20, math.Inf(-1), -150, math.NaN()}
	FloorDB(in, -120)

	want := []float64{0, -20, -120, -120, -120}
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("in[%d] = %v, want %v", i, in[i], want[i])
		}
	}
}
