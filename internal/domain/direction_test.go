package domain

import (
	"math"
	"testing"
)

func TestNewDirectionNormalizesLongitude(t *testing.T) {
	d, err := NewDirection(-30, 10)
	if err != nil {
		t.Fatalf("NewDirection error: %v", err)
	}
	if math.Abs(d.LonDeg-330) > 1e-12 {
		t.Fatalf("expected lon 330, got %v", d.LonDeg)
	}

	d, err = NewDirection(725, -45)
	if err != nil {
		t.Fatalf("NewDirection error: %v", err)
	}
	if math.Abs(d.LonDeg-5) > 1e-12 {
		t.Fatalf("expected lon 5, got %v", d.LonDeg)
	}
}

func TestNewDirectionRejectsBadInput(t *testing.T) {
	cases := []struct {
		name     string
		lon, lat float64
	}{
		{"lat too high", 10, 91},
		{"lat too low", 10, -90.5},
		{"nan lon", math.NaN(), 0},
		{"inf lat", 0, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDirection(tc.lon, tc.lat); !IsKind(err, KindInvalidDirection) {
				t.Fatalf("expected invalid_direction, got %v", err)
			}
		})
	}
}

func TestFromEquatorialKnownPoints(t *testing.T) {
	// North galactic pole maps to b=+90 by construction.
	ngp, err := FromEquatorial(192.85948, 27.12825)
	if err != nil {
		t.Fatalf("FromEquatorial error: %v", err)
	}
	if math.Abs(ngp.LatDeg-90) > 1e-6 {
		t.Fatalf("NGP latitude = %v, want 90", ngp.LatDeg)
	}

	// Galactic center (Sgr A* region).
	gc, err := FromEquatorial(266.40499, -28.93617)
	if err != nil {
		t.Fatalf("FromEquatorial error: %v", err)
	}
	if math.Abs(gc.LonDeg) > 1e-3 && math.Abs(gc.LonDeg-360) > 1e-3 {
		t.Fatalf("galactic center l = %v, want ~0", gc.LonDeg)
	}
	if math.Abs(gc.LatDeg) > 1e-3 {
		t.Fatalf("galactic center b = %v, want ~0", gc.LatDeg)
	}

	// The Boötes target used throughout the repo.
	bootes, err := FromEquatorial(222.5, 46.0)
	if err != nil {
		t.Fatalf("FromEquatorial error: %v", err)
	}
	if math.Abs(bootes.LonDeg-79.6582) > 1e-3 {
		t.Fatalf("Boötes l = %v, want ~79.658", bootes.LonDeg)
	}
	if math.Abs(bootes.LatDeg-59.9222) > 1e-3 {
		t.Fatalf("Boötes b = %v, want ~59.922", bootes.LatDeg)
	}
}

func TestSeparationDeg(t *testing.T) {
	a, _ := NewDirection(0, 0)
	b, _ := NewDirection(90, 0)
	if got := a.SeparationDeg(b); math.Abs(got-90) > 1e-9 {
		t.Fatalf("equatorial quarter-turn separation = %v, want 90", got)
	}

	pole, _ := NewDirection(123, 90)
	eq, _ := NewDirection(7, 0)
	if got := pole.SeparationDeg(eq); math.Abs(got-90) > 1e-9 {
		t.Fatalf("pole-to-equator separation = %v, want 90", got)
	}

	if got := a.SeparationDeg(a); got > 1e-9 {
		t.Fatalf("self separation = %v, want 0", got)
	}
}
