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

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name             string
		sw, sh, w, h     int
		expectX, expectY int
	}{
		{"even fit", 80, 24, 40, 10, 20, 7},
		{"odd remainder", 81, 25, 40, 10, 20, 7},
		{"larger than screen", 10, 5, 20, 9, -5, -2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.sw, tc.sh, tc.w, tc.h)
			if r.X != tc.expectX || r.Y != tc.expectY {
				t.Errorf("CenteredRect() origin = (%d, %d), expected (%d, %d)", r.X, r.Y, tc.expectX, tc.expectY)
			}
			if r.W != tc.w || r.H != tc.h {
				t.Errorf("CenteredRect() size = %dx%d, expected %dx%d", r.W, r.H, tc.w, tc.h)
			}
		})
	}
}
