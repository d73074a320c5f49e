// Package region implements the rectangle algebra the layout tree and
// region engine build on: splitting a rectangle into two along an axis,
// padding it by a per-workspace offset, and point containment.
//
// All geometry here is float32 ("single-precision is adequate"); region
// rounding is deferred to the accessibility-bridge boundary via Round.
package region

// Axis is a split orientation.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Rect is an axis-aligned rectangle in display-global coordinates.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Offset is per-workspace padding; Gap is inter-sibling spacing.
type Offset struct {
	Top    float32
	Bottom float32
	Left   float32
	Right  float32
	Gap    float32
}

// Point is a single display-global coordinate.
type Point struct {
	X float32
	Y float32
}

// Split divides R into two rectangles along axis at the given ratio,
// separated by gap. ratio is the fraction of R assigned to the first
// (left/upper) rectangle.
func Split(r Rect, ratio float32, axis Axis, gap float32) (Rect, Rect) {
	switch axis {
	case Vertical:
		left := r
		left.Width = ratio*r.Width - gap/2
		right := r
		right.X = r.X + left.Width + gap
		right.Width = r.Width - left.Width - gap
		return left, right
	default: // Horizontal
		upper := r
		upper.Height = ratio*r.Height - gap/2
		lower := r
		lower.Y = r.Y + upper.Height + gap
		lower.Height = r.Height - upper.Height - gap
		return upper, lower
	}
}

// Pad subtracts the offset's padding from R, returning the usable area.
func Pad(r Rect, o Offset) Rect {
	return Rect{
		X:      r.X + o.Left,
		Y:      r.Y + o.Top,
		Width:  r.Width - o.Left - o.Right,
		Height: r.Height - o.Top - o.Bottom,
	}
}

// Contains reports whether p lies within r (inclusive of edges).
func Contains(r Rect, p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// CenterX returns the horizontal midpoint of r.
func (r Rect) CenterX() float32 { return r.X + r.Width/2 }

// CenterY returns the vertical midpoint of r.
func (r Rect) CenterY() float32 { return r.Y + r.Height/2 }

// Center returns the midpoint of r.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Area returns the rectangle's area, used to break BiggestLeaf ties.
func (r Rect) Area() float32 { return r.Width * r.Height }

// IntRect is a rounded rectangle, the form handed to the accessibility
// bridge; region math itself never rounds internally.
type IntRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Round converts r to integer pixel coordinates for the accessibility
// bridge. Standard rounding, not truncation, so adjacent regions don't
// develop visible seams from repeated floor() bias.
func (r Rect) Round() IntRect {
	return IntRect{
		X:      roundF(r.X),
		Y:      roundF(r.Y),
		Width:  roundF(r.Width),
		Height: roundF(r.Height),
	}
}

func roundF(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
