package command

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// Warp moves the current window's binding to target's position. If
// target shares a parent with the current node, this behaves exactly
// like Swap; otherwise the current window is untiled, the insertion
// point is set to target, the current window is retiled there
// (producing a new sibling of target), and the insertion point is
// restored. Monocle behaves exactly like Swap. When mouse-follows-focus
// is configured, the cursor is centered on the focused window's new
// region — BSP only, per spec.
func (d *Dispatcher) Warp(spaceID uint32, target NavTarget) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Mode == workspace.Monocle {
		return d.swapMonocle(space, target)
	}

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("warp: resolve active window: %v", err)
		return nil
	}
	currentNode := space.Tree.FindByWindowID(space.Tree.Root(), current)
	if currentNode == bsptree.NoNode {
		return nil
	}

	targetNode, found := d.resolveNav(spaceID, space, currentNode, target)
	if !found {
		return nil
	}

	if space.Tree.Node(currentNode).Parent == space.Tree.Node(targetNode).Parent {
		space.Tree.SwapNodeIds(currentNode, targetNode)
		if err := d.applyAndNotify(space.Tree, space.Tree.Root()); err != nil {
			return err
		}
		if d.Config.MouseFollowsFocus {
			d.centerMouseInRegion(space.Tree.Node(targetNode).Region)
		}
		return nil
	}

	windowID := space.Tree.Node(currentNode).WindowID
	space.Tree.RemoveLeaf(currentNode)

	spawnLeft := target.Dir == bsptree.West || target.Dir == bsptree.North
	split := bsptree.Vertical
	if target.Dir == bsptree.North || target.Dir == bsptree.South {
		split = bsptree.Horizontal
	}
	space.Tree.SplitLeaf(targetNode, windowID, spawnLeft, split, d.Config.BSPSplitRatio)

	if err := d.recomputeApplyAndNotify(space, space.Tree.Root()); err != nil {
		return err
	}
	if d.Config.MouseFollowsFocus {
		focusedNode := space.Tree.FindByWindowID(space.Tree.Root(), windowID)
		if focusedNode != bsptree.NoNode {
			d.centerMouseInRegion(space.Tree.Node(focusedNode).Region)
		}
	}
	return nil
}
