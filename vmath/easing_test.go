package vmath

import (
	"math"
	"testing"
)

func TestEaseOutCubicEndpoints(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("EaseOutCubic(0) = %v, want 0", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("EaseOutCubic(1) = %v, want 1", got)
	}
}

func TestEaseOutCubicBoundedAndMonotonic(t *testing.T) {
	prev := EaseOutCubic(0)
	for i := 1; i <= 1000; i++ {
		p := float64(i) / 1000
		e := EaseOutCubic(p)
		if e < 0 || e > 1 {
			t.Fatalf("EaseOutCubic(%v) = %v, outside [0,1]", p, e)
		}
		if e < prev {
			t.Fatalf("EaseOutCubic not monotonic at p=%v: %v < %v", p, e, prev)
		}
		prev = e
	}
}

func TestEaseOutCubicMidpoint(t *testing.T) {
	// 1 - 0.5^3
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 1e-12 {
		t.Errorf("EaseOutCubic(0.5) = %v, want 0.875", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3.5, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(450, 900); got != 0.5 {
		t.Errorf("Progress(450, 900) = %v, want 0.5", got)
	}
	if got := Progress(2000, 900); got != 1 {
		t.Errorf("Progress past end = %v, want 1", got)
	}
	if got := Progress(10, 0); got != 1 {
		t.Errorf("Progress with zero total = %v, want 1", got)
	}
}

func TestEaseInOutSineCycle(t *testing.T) {
	if got := EaseInOutSine(0); math.Abs(got) > 1e-12 {
		t.Errorf("start = %v, want 0", got)
	}
	if got := EaseInOutSine(0.5); math.Abs(got-1) > 1e-12 {
		t.Errorf("mid = %v, want 1", got)
	}
	if got := EaseInOutSine(1.25); math.Abs(got-EaseInOutSine(0.25)) > 1e-12 {
		t.Errorf("phase should wrap, got %v", got)
	}
}
