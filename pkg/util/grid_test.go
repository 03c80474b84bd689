package util

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	got := Linspace(1, 100, 12)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[0] != 1 || got[11] != 100 {
		t.Errorf("endpoints = %v, %v, want 1, 100", got[0], got[11])
	}
	step := got[1] - got[0]
	for i := 1; i < len(got); i++ {
		if math.Abs((got[i]-got[i-1])-step) > 1e-9 {
			t.Errorf("uneven step at %d", i)
		}
	}

	if Linspace(0, 1, 0) != nil {
		t.Error("expected nil for zero points")
	}
	if got := Linspace(5, 9, 1); len(got) != 1 || got[0] != 5 {
		t.Errorf("single point = %v, want [5]", got)
	}
}

func TestLogspace(t *testing.T) {
	got := Logspace(1, 1000, 4)
	want := []float64{1, 10, 100, 1000}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9*want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	if Logspace(0, 10, 5) != nil {
		t.Error("expected nil for non-positive start")
	}
}
