package region

import "testing"

func TestSplitVerticalPartitionsWidthMinusGap(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	left, right := Split(r, 0.5, Vertical, 10)

	if left.Width != 45 {
		t.Fatalf("expected left width 45, got %v", left.Width)
	}
	if right.X != 55 {
		t.Fatalf("expected right.X 55, got %v", right.X)
	}
	if right.Width != 45 {
		t.Fatalf("expected right width 45, got %v", right.Width)
	}
	if left.Height != r.Height || right.Height != r.Height {
		t.Fatalf("height should be unchanged on vertical split")
	}
}

func TestSplitHorizontalPartitionsHeightMinusGap(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 50, Height: 100}
	upper, lower := Split(r, 0.25, Horizontal, 4)

	if upper.Height != 23 {
		t.Fatalf("expected upper height 23, got %v", upper.Height)
	}
	if lower.Y != 27 {
		t.Fatalf("expected lower.Y 27, got %v", lower.Y)
	}
	if lower.Height != 73 {
		t.Fatalf("expected lower height 73, got %v", lower.Height)
	}
}

func TestPadSubtractsEachSide(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	padded := Pad(r, Offset{Top: 1, Bottom: 2, Left: 3, Right: 4})

	want := Rect{X: 3, Y: 1, Width: 93, Height: 97}
	if padded != want {
		t.Fatalf("expected %+v, got %+v", want, padded)
	}
}

func TestContainsEdgesInclusive(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !Contains(r, Point{X: 0, Y: 0}) {
		t.Fatalf("expected top-left corner contained")
	}
	if !Contains(r, Point{X: 10, Y: 10}) {
		t.Fatalf("expected bottom-right corner contained")
	}
	if Contains(r, Point{X: 10.01, Y: 5}) {
		t.Fatalf("expected point just outside to be rejected")
	}
}

func TestRoundNearestNotTruncate(t *testing.T) {
	r := Rect{X: 1.6, Y: -1.6, Width: 2.5, Height: 2.4}
	got := r.Round()
	want := IntRect{X: 2, Y: -2, Width: 3, Height: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
