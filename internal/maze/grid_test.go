package maze

import (
	"errors"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		rows, cols int
		ok         bool
	}{
		{5, 5, true},
		{21, 21, true},
		{9, 31, true},
		{3, 9, false},
		{9, 3, false},
		{10, 9, false},
		{9, 10, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		err := ValidateDimensions(tt.rows, tt.cols)
		if tt.ok && err != nil {
			t.Errorf("ValidateDimensions(%d, %d) = %v, want nil", tt.rows, tt.cols, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("ValidateDimensions(%d, %d) = %v, want ErrInvalidDimensions", tt.rows, tt.cols, err)
		}
	}
}

func TestCoordHelpers(t *testing.T) {
	if !C(1, 3).OddAligned() {
		t.Error("(1,3) should be odd aligned")
	}
	if C(2, 3).OddAligned() || C(1, 0).OddAligned() {
		t.Error("even components should not be odd aligned")
	}
	if got := C(5, 5).Step(Up); got != C(4, 5) {
		t.Errorf("Step(Up) = %v", got)
	}
	if got := C(5, 5).Step(Right); got != C(5, 6) {
		t.Errorf("Step(Right) = %v", got)
	}
	if got := Manhattan(C(1, 1), C(4, 7)); got != 9 {
		t.Errorf("Manhattan = %d, want 9", got)
	}
	if got := SnapOdd(C(2, 4)); got != C(3, 5) {
		t.Errorf("SnapOdd = %v, want (3,5)", got)
	}
	if got := SnapOdd(C(3, 5)); got != C(3, 5) {
		t.Errorf("SnapOdd changed an odd coord: %v", got)
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{
		"#####",
		"#..##",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("dims = %dx%d, want 3x5", g.Rows(), g.Cols())
	}
	if !g.IsPath(C(1, 1)) || !g.IsPath(C(1, 2)) {
		t.Error("expected path at (1,1) and (1,2)")
	}
	if g.IsPath(C(1, 3)) {
		t.Error("expected wall at (1,3)")
	}
	if g.At(C(-1, 0)) != Wall || g.At(C(0, 99)) != Wall {
		t.Error("out-of-bounds cells should read as walls")
	}
	if got := g.String(); got != "#####\n#..##\n#####" {
		t.Errorf("String() = %q", got)
	}

	if _, err := ParseGrid([]string{"###", "##"}); err == nil {
		t.Error("ragged rows should fail")
	}
	if _, err := ParseGrid(nil); err == nil {
		t.Error("empty input should fail")
	}
}

func TestGridClone(t *testing.T) {
	g, _ := ParseGrid([]string{"###", "#.#", "###"})
	clone := g.Clone()
	clone.set(C(1, 1), Wall)
	if !g.IsPath(C(1, 1)) {
		t.Error("clone shares cells with original")
	}
}
