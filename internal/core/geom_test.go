package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"touching edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 1, 1}, true},
		{"x overlap only", Box{0, 0, 10, 10}, Box{5, 20, 10, 10}, false},
		{"y overlap only", Box{0, 0, 10, 10}, Box{20, 5, 10, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := Box{X: 100, Y: 200, W: 40, H: 50}

	full := b.Inset(HitRegion{})
	if full != b {
		t.Errorf("zero HitRegion should keep bounds, got %+v", full)
	}

	// Centered horizontally, lowered: trims the head more than the feet.
	in := b.Inset(HitRegion{Left: 0.25, Right: 0.25, Top: 0.2, Bottom: 0.1})
	want := Box{X: 110, Y: 210, W: 20, H: 35}
	if in != want {
		t.Errorf("Inset() = %+v, expected %+v", in, want)
	}
	if in.Right() > b.Right() || in.Bottom() > b.Bottom() {
		t.Error("inset box must stay inside the original bounds")
	}
}

func TestHitRegionValid(t *testing.T) {
	tests := []struct {
		h        HitRegion
		expected bool
	}{
		{HitRegion{}, true},
		{HitRegion{Left: 0.3, Right: 0.3, Top: 0.1}, true},
		{HitRegion{Left: 0.5, Right: 0.5}, false},
		{HitRegion{Top: 0.7, Bottom: 0.4}, false},
		{HitRegion{Left: -0.1}, false},
	}

	for _, tc := range tests {
		if got := tc.h.Valid(); got != tc.expected {
			t.Errorf("Valid(%+v) = %v, expected %v", tc.h, got, tc.expected)
		}
	}
}
