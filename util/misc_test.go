package util

import (
	"testing"
)

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, 1, 2) != 2 {
		t.Error("IfThenElse(false, 1, 2) should be 2")
	}
	if IfThenElse(true, "a", "b") != "a" {
		t.Error("IfThenElse(true, 'a', 'b') should be 'a'")
	}
}

func TestCloseTo(t *testing.T) {
	if !CloseTo[float32](1, 1.00000005, 0.0000001) {
		t.Error("CloseTo(1, 1.00000005) should be true")
	}
	if CloseTo[float64](1, 1.001, 0.0001) {
		t.Error("CloseTo(1, 1.001, 0.0001) should be false")
	}
}

func TestCloseToPercent(t *testing.T) {
	tests := []struct {
		a, b     float64
		pct      float64
		expected bool
	}{
		{1000, 1000.005, 0.00001, true},
		{1000, 1000.5, 0.00001, false},
		{0, 0.000001, 0.00001, true},
		{-5, 5, 0.1, false},
	}

	for _, tt := range tests {
		if result := CloseToPercent(tt.a, tt.b, tt.pct); result != tt.expected {
			t.Errorf("CloseToPercent(%f, %f, %f) = %v; want %v", tt.a, tt.b, tt.pct, result, tt.expected)
		}
	}
}
