package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// GridLayout parses "rows:cols:x:y:w:h", clamps x/y/w/h to the grid,
// and positions the current window directly at the computed pixel
// rectangle over the display's padded bounds. Only valid on float
// workspaces or already-floating windows; a request against a tiled
// window is a precondition violation (WARN + abort).
func (d *Dispatcher) GridLayout(spaceID uint32, op string) error {
	rows, cols, x, y, w, h, err := parseGridOp(op)
	if err != nil {
		d.warnf("grid layout: %v", err)
		return nil
	}
	if x < 0 {
		x = 0
	} else if x >= cols {
		x = cols - 1
	}
	if y < 0 {
		y = 0
	} else if y >= rows {
		y = rows - 1
	}
	if x+w > cols {
		w = cols - x
	}
	if y+h > rows {
		h = rows - y
	}
	if w <= 0 || h <= 0 {
		d.warnf("grid layout: degenerate cell %q", op)
		return nil
	}

	space, release := d.Registry.Acquire(spaceID)
	current, err := d.Access.ActiveWindowID()
	if err != nil {
		release()
		d.warnf("grid layout: resolve active window: %v", err)
		return nil
	}
	_, floating := space.FloatWindows[current]
	offset := space.Offset()
	release()

	if space.Mode != workspace.Float && !floating {
		d.warnf("grid layout: window %d is not floating", current)
		return nil
	}

	bounds, err := d.Access.DisplayBounds(spaceID)
	if err != nil {
		d.warnf("grid layout: display bounds: %v", err)
		return nil
	}
	bounds = region.Pad(bounds, offset)

	cellW := bounds.Width / float32(cols)
	cellH := bounds.Height / float32(rows)
	target := region.Rect{
		X:      bounds.X + float32(x)*cellW,
		Y:      bounds.Y + float32(y)*cellH,
		Width:  float32(w) * cellW,
		Height: float32(h) * cellH,
	}

	return d.Access.MoveResizeWindow(current, target.Round())
}

func parseGridOp(op string) (rows, cols, x, y, w, h int, err error) {
	parts := strings.Split(op, ":")
	if len(parts) != 6 {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("expected rows:cols:x:y:w:h, got %q", op)
	}
	vals := make([]int, 6)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, 0, 0, 0, fmt.Errorf("malformed integer %q in %q", p, op)
		}
		vals[i] = v
	}
	if vals[0] <= 0 || vals[1] <= 0 {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("rows/cols must be positive in %q", op)
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], nil
}
