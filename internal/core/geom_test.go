package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"left of rect", 9, 15, false},
		{"above rect", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"centred board", CenteredRect(20, 10, 80, 24), true},
		{"full screen", screen, true},
		{"too wide", CenteredRect(90, 10, 80, 24), false},
		{"too tall", CenteredRect(20, 30, 80, 24), false},
		{"past right edge", NewRect(70, 0, 20, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Within(screen); got != tc.expected {
				t.Errorf("Within() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(10, 4, 80, 24)
	if r.X != 35 || r.Y != 10 || r.W != 10 || r.H != 4 {
		t.Errorf("CenteredRect = %+v, expected {35 10 10 4}", r)
	}
	if r.Right() != 45 || r.Bottom() != 14 {
		t.Errorf("Right/Bottom = %d/%d, expected 45/14", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
