package command

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/normalize"
	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// SendWindowToDesktop moves the current window to destDesktop via the
// window-system bridge. In a BSP space it first untiles the window from
// the source tree, re-focuses a remaining window there, and rescales
// the window's rectangle for the destination display when the two
// spaces' display bounds differ. The window is not tiled on the
// destination space, whether or not that space is active. Refuses
// (silent no-op) a same-source-destination send.
//
// Monocle spaces only remove the window from the list (no re-focus, no
// rescale), and additionally refuse sending to the same display: this
// preserves a rejection that reads as an upstream guard-condition
// defect (see design notes) rather than "fixing" it into acceptance.
func (d *Dispatcher) SendWindowToDesktop(sourceSpaceID, destDesktop uint32) error {
	if sourceSpaceID == destDesktop {
		return nil
	}

	space, release := d.Registry.Acquire(sourceSpaceID)
	defer release()

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("send window to desktop: resolve active window: %v", err)
		return nil
	}

	if space.Mode == workspace.Monocle {
		srcDisplay, errSrc := d.Access.DisplayForSpace(sourceSpaceID)
		destDisplay, errDest := d.Access.DisplayForSpace(destDesktop)
		if errSrc == nil && errDest == nil && srcDisplay == destDisplay {
			return nil
		}
		n := space.Monocle.Find(current)
		if n != nil {
			space.Monocle.Remove(n)
		}
	} else {
		if space.Tree == nil || space.Tree.Empty() {
			return nil
		}
		node := space.Tree.FindByWindowID(space.Tree.Root(), current)
		if node == bsptree.NoNode {
			return nil
		}
		winRect := space.Tree.Node(node).Region
		space.Tree.RemoveLeaf(node)
		if !space.Tree.Empty() {
			if err := d.recomputeApplyAndNotify(space, space.Tree.Root()); err != nil {
				return err
			}
		}
		d.refocusRemaining(space)
		d.normalizeAcrossDisplays(current, winRect, sourceSpaceID, destDesktop)
	}

	return d.Access.SendWindowToDesktop(current, destDesktop)
}

func (d *Dispatcher) refocusRemaining(space *workspace.Space) {
	if space.Tree == nil || space.Tree.Empty() {
		return
	}
	leaf := space.Tree.FirstLeaf(space.Tree.Root())
	if err := d.Access.FocusWindow(space.Tree.Node(leaf).WindowID); err != nil {
		d.Log.Printf("refocus after send-to-desktop failed: %v", err)
	}
}

// normalizeAcrossDisplays best-effort rescales winRect for the
// destination display when source and destination are on different
// physical displays; a failure to resolve either display's bounds is
// an I/O failure (log + continue), not fatal to the send.
func (d *Dispatcher) normalizeAcrossDisplays(windowID uint32, winRect region.Rect, srcSpace, destSpace uint32) {
	srcBounds, err := d.Access.DisplayBounds(srcSpace)
	if err != nil {
		d.Log.Printf("normalize across displays: source bounds: %v", err)
		return
	}
	destBounds, err := d.Access.DisplayBounds(destSpace)
	if err != nil {
		d.Log.Printf("normalize across displays: destination bounds: %v", err)
		return
	}
	if srcBounds == destBounds {
		return // same display, nothing to normalize
	}
	normalized := normalize.Normalize(winRect, srcBounds, destBounds)
	if err := d.Access.MoveResizeWindow(windowID, normalized.Round()); err != nil {
		d.Log.Printf("normalize across displays: move/resize: %v", err)
	}
}
