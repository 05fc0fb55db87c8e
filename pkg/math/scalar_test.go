package math

import (
	"testing"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %v, want 3", got)
	}
	if got := Lerp(1, 5, 0); got != 1 {
		t.Errorf("Lerp(1, 5, 0) = %v, want 1", got)
	}
	if got := Lerp(1, 5, 1); got != 5 {
		t.Errorf("Lerp(1, 5, 1) = %v, want 5", got)
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{0.75, 0.75},
		{1, 0},
		{2.25, 0.25},
		{-0.25, 0.75},
	}
	for _, tt := range tests {
		if got := Fract(tt.in); !ApproxEqual(got, tt.want, 1e-6) {
			t.Errorf("Fract(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFractAlwaysInRange(t *testing.T) {
	for _, v := range []float32{-10.5, -1, -0.0001, 0, 0.9999, 1, 3.7, 100.25} {
		f := Fract(v)
		if f < 0 || f >= 1 {
			t.Errorf("Fract(%v) = %v, out of [0, 1)", v, f)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -1); got != 0 {
		t.Errorf("Smoothstep below edge = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 2); got != 1 {
		t.Errorf("Smoothstep above edge = %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Errorf("Smoothstep(0, 1, 0.5) = %v, want 0.5", got)
	}
}

func TestSmoothstepDegenerateEdges(t *testing.T) {
	if got := Smoothstep(0.5, 0.5, 0.4); got != 0 {
		t.Errorf("Smoothstep equal edges below = %v, want 0", got)
	}
	if got := Smoothstep(0.5, 0.5, 0.6); got != 1 {
		t.Errorf("Smoothstep equal edges above = %v, want 1", got)
	}
}
