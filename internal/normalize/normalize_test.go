package normalize

import "testing"

func TestNormalizeShrinksOffsetMovingToSmallerDisplay(t *testing.T) {
	src := Bounds{X: 0, Y: 0, Width: 2000, Height: 1000}
	dst := Bounds{X: 2000, Y: 0, Width: 1000, Height: 500}
	win := Bounds{X: 1500, Y: 500, Width: 400, Height: 300} // offset (1500,500) on src

	got := Normalize(win, src, dst)

	// scaleX = 2000/1000 = 2 > 1: offsetX/2 + dst.X = 1500/2 + 2000 = 2750
	if got.X != 2750 {
		t.Fatalf("expected shrunk x offset 2750, got %v", got.X)
	}
	if got.Width != 200 {
		t.Fatalf("expected width halved to 200, got %v", got.Width)
	}
}

func TestNormalizeDoesNotEnlargeOffsetMovingToLargerDisplay(t *testing.T) {
	src := Bounds{X: 0, Y: 0, Width: 1000, Height: 500}
	dst := Bounds{X: 1000, Y: 0, Width: 2000, Height: 1000}
	win := Bounds{X: 100, Y: 50, Width: 200, Height: 150}

	got := Normalize(win, src, dst)

	// scaleX = 1000/2000 = 0.5 <= 1: offset unscaled, x = 100 + 1000 = 1100
	if got.X != 1100 {
		t.Fatalf("expected unscaled offset 1100, got %v", got.X)
	}
	// size is still divided by scale (0.5), so it grows: 200/0.5 = 400
	if got.Width != 400 {
		t.Fatalf("expected width grown to 400 (size always scales), got %v", got.Width)
	}
}
