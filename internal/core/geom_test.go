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
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, expected int
	}{
		{0, 8, 0},
		{8, 8, 0},
		{-1, 8, 7},
		{17, 8, 1},
		{3, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
		}
	}
}

func TestNumberColor(t *testing.T) {
	if NumberColor(1) != ColorBlue {
		t.Errorf("NumberColor(1) = %v", NumberColor(1))
	}
	if NumberColor(3) != ColorRed {
		t.Errorf("NumberColor(3) = %v", NumberColor(3))
	}
	if NumberColor(-1) != ColorDefault || NumberColor(9) != ColorDefault {
		t.Error("out of range numbers should use the default color")
	}
}
