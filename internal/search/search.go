// Package search implements the geometric nearest-neighbor lookup used
// by directional focus/swap/warp/ratio commands: given a rectangle and
// a direction, find the closest candidate rectangle in that direction.
package search

import (
	"math"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/region"
)

// Candidate is one window eligible for directional search: its window
// id and current rectangle. Kept as plain data (no tree dependency) so
// callers can supply either "all visible windows in the current
// workspace" or "all visible windows on a fullscreen space".
type Candidate struct {
	WindowID uint32
	Rect     region.Rect
}

// WindowIsInDirection reports whether b lies in direction dir relative
// to a, using the axis-overlap predicate: North/South require the
// rectangles to differ in Y and overlap in X; East/West require them to
// differ in X and overlap in Y.
func WindowIsInDirection(dir bsptree.Direction, a, b region.Rect) bool {
	switch dir {
	case bsptree.North, bsptree.South:
		if a.Y == b.Y {
			return false
		}
		return math.Max(float64(a.X), float64(b.X)) < math.Min(float64(a.X+a.Width), float64(b.X+b.Width))
	case bsptree.East, bsptree.West:
		if a.X == b.X {
			return false
		}
		return math.Max(float64(a.Y), float64(b.Y)) < math.Min(float64(a.Y+a.Height), float64(b.Y+b.Height))
	default:
		return false
	}
}

// Distance computes the directional penalty distance from aCenter to
// bCenter for dir. If wrap, bCenter is first shifted by one display
// extent in the opposite direction, letting off-edge neighbors be
// reached by wraparound. Candidates that fail the sign test for dir
// return +Inf.
func Distance(aCenter, bCenter region.Point, dir bsptree.Direction, wrap bool, displayBounds region.Rect) float64 {
	if wrap {
		switch dir {
		case bsptree.North:
			bCenter.Y += displayBounds.Height
		case bsptree.South:
			bCenter.Y -= displayBounds.Height
		case bsptree.East:
			bCenter.X -= displayBounds.Width
		case bsptree.West:
			bCenter.X += displayBounds.Width
		}
	}

	dx := float64(bCenter.X - aCenter.X)
	dy := float64(bCenter.Y - aCenter.Y)

	switch dir {
	case bsptree.North:
		if dy >= 0 {
			return math.Inf(1)
		}
	case bsptree.South:
		if dy <= 0 {
			return math.Inf(1)
		}
	case bsptree.East:
		if dx <= 0 {
			return math.Inf(1)
		}
	case bsptree.West:
		if dx >= 0 {
			return math.Inf(1)
		}
	default:
		return math.Inf(1)
	}

	theta := math.Atan2(dy, dx)
	d := math.Hypot(dx, dy)

	var alpha float64
	switch dir {
	case bsptree.North:
		alpha = -math.Pi/2 - theta
	case bsptree.East:
		alpha = 0 - theta
	case bsptree.South:
		alpha = math.Pi/2 - theta
	case bsptree.West:
		alpha = math.Pi - math.Abs(theta)
	}

	return d / math.Cos(alpha/2)
}

// Nearest returns the candidate in self's direction dir closest by
// Distance, skipping self (matched by WindowID), or found=false if none
// qualifies.
func Nearest(self Candidate, candidates []Candidate, dir bsptree.Direction, wrap bool, displayBounds region.Rect) (best Candidate, found bool) {
	bestDist := math.Inf(1)
	aCenter := self.Rect.Center()

	for _, c := range candidates {
		if c.WindowID == self.WindowID {
			continue
		}
		if !WindowIsInDirection(dir, self.Rect, c.Rect) {
			continue
		}
		d := Distance(aCenter, c.Rect.Center(), dir, wrap, displayBounds)
		if d < bestDist {
			bestDist = d
			best = c
			found = true
		}
	}
	return best, found
}
