// Package normalize converts a window's rectangle from one display's
// coordinate space to another's when a window is sent across displays.
package normalize

import "github.com/trws/chunkwm-tiling/internal/region"

// Bounds is a display's rectangle in global coordinates.
type Bounds = region.Rect

// Normalize maps winRect, currently positioned on display src, to its
// equivalent rectangle on display dst.
//
// Position uses the asymmetric rule: moving to a smaller display
// (scale > 1) shrinks the offset from the display origin; moving to a
// larger display leaves the offset unscaled, so a window docked near
// one corner doesn't drift toward the center of a much bigger screen.
// Size is always divided by scale, in both directions, regardless of
// the asymmetric position rule.
func Normalize(winRect region.Rect, src, dst Bounds) region.Rect {
	offsetX := winRect.X - src.X
	offsetY := winRect.Y - src.Y

	scaleX := src.Width / dst.Width
	scaleY := src.Height / dst.Height

	var x, y float32
	if scaleX > 1 {
		x = offsetX/scaleX + dst.X
	} else {
		x = offsetX + dst.X
	}
	if scaleY > 1 {
		y = offsetY/scaleY + dst.Y
	} else {
		y = offsetY + dst.Y
	}

	return region.Rect{
		X:      x,
		Y:      y,
		Width:  winRect.Width / scaleX,
		Height: winRect.Height / scaleY,
	}
}
