// Package regionengine assigns rectangles to layout-tree nodes and
// applies them to windows through an injected mover.
package regionengine

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/region"
)

// Mode selects which half of a display a single node's region covers,
// used for single-node-on-half-display placement by the pre-select
// overlay.
type Mode int

const (
	Full Mode = iota
	Left
	Right
	Upper
	Lower
)

// WindowMover is the narrow collaborator this package needs from the
// accessibility bridge: move/resize one window to a rectangle.
type WindowMover interface {
	MoveResizeWindow(windowID uint32, r region.IntRect) error
}

// CreateNodeRegion sets root's Region from bounds, padded by offset,
// then narrowed to the half of the display mode selects.
func CreateNodeRegion(t *bsptree.Tree, root bsptree.NodeID, mode Mode, bounds region.Rect, offset region.Offset) {
	r := region.Pad(bounds, offset)
	switch mode {
	case Left:
		r.Width = r.Width / 2
	case Right:
		half := r.Width / 2
		r.X += half
		r.Width -= half
	case Upper:
		r.Height = r.Height / 2
	case Lower:
		half := r.Height / 2
		r.Y += half
		r.Height -= half
	}
	t.Node(root).Region = r
}

// CreateNodeRegionRecursive computes n's children's regions from n's
// own Region, Split, and Ratio, recursing to the leaves.
func CreateNodeRegionRecursive(t *bsptree.Tree, id bsptree.NodeID, gap float32) {
	n := t.Node(id)
	if n.IsLeaf() {
		return
	}
	axis := region.Horizontal
	if n.Split == bsptree.Vertical {
		axis = region.Vertical
	}
	left, right := region.Split(n.Region, n.Ratio, axis, gap)
	t.Node(n.Left).Region = left
	t.Node(n.Right).Region = right
	CreateNodeRegionRecursive(t, n.Left, gap)
	CreateNodeRegionRecursive(t, n.Right, gap)
}

// ResizeNodeRegion recomputes every region under n. n need not be the
// tree root; its own Region is taken as given and only its descendants
// are recomputed.
func ResizeNodeRegion(t *bsptree.Tree, id bsptree.NodeID, gap float32) {
	CreateNodeRegionRecursive(t, id, gap)
}

// ApplyNodeRegion walks the tree rooted at root and moves each leaf's
// bound window to its Region. When includeZoom is true, a node named
// by Tree.Zoom is resized to the zoomed region instead: the root's own
// Zoom is fullscreen (sized to root's Region), any other node's Zoom is
// parent-zoom (sized to that node's own Region); fullscreen takes
// precedence when both apply to the same window.
func ApplyNodeRegion(t *bsptree.Tree, root bsptree.NodeID, mode Mode, includeZoom bool, mover WindowMover) error {
	var fullscreenTarget bsptree.NodeID = bsptree.NoNode
	if includeZoom {
		fullscreenTarget = t.Node(root).Zoom
	}

	for _, leaf := range t.Leaves(root) {
		r := t.Node(leaf).Region

		if includeZoom && fullscreenTarget != bsptree.NoNode && leaf == fullscreenTarget {
			r = t.Node(root).Region
		}

		if err := mover.MoveResizeWindow(t.Node(leaf).WindowID, r.Round()); err != nil {
			return err
		}
	}

	if includeZoom {
		if err := applyParentZoom(t, root, fullscreenTarget, mover); err != nil {
			return err
		}
	}

	return nil
}

// applyParentZoom re-applies any non-root node's Zoom: the zoomed
// child is resized to that node's own Region rather than its own,
// unless that child is also the fullscreen target, which wins.
func applyParentZoom(t *bsptree.Tree, id, fullscreenTarget bsptree.NodeID, mover WindowMover) error {
	n := t.Node(id)
	if !n.IsLeaf() && n.Zoom != bsptree.NoNode && n.Zoom != fullscreenTarget {
		target := t.Node(n.Zoom)
		if target.IsLeaf() {
			if err := mover.MoveResizeWindow(target.WindowID, n.Region.Round()); err != nil {
				return err
			}
		}
	}
	if n.IsLeaf() {
		return nil
	}
	if err := applyParentZoom(t, n.Left, fullscreenTarget, mover); err != nil {
		return err
	}
	return applyParentZoom(t, n.Right, fullscreenTarget, mover)
}

// ResizeWindowToRegionSize reverts a zoomed leaf to its own Region.
func ResizeWindowToRegionSize(t *bsptree.Tree, id bsptree.NodeID, mover WindowMover) error {
	n := t.Node(id)
	return mover.MoveResizeWindow(n.WindowID, n.Region.Round())
}

// ResizeWindowToExternalRegionSize sizes n's bound window to an
// arbitrary rectangle not stored in the tree, the operation zoom
// toggles use to size a window to a borrowed region.
func ResizeWindowToExternalRegionSize(t *bsptree.Tree, id bsptree.NodeID, r region.Rect, mover WindowMover) error {
	n := t.Node(id)
	return mover.MoveResizeWindow(n.WindowID, r.Round())
}
