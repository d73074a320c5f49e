package command

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// Swap exchanges the window bound to the current insertion point with
// the window in target's direction. BSP exchanges WindowId between the
// two nodes and reapplies both regions; Monocle exchanges WindowId
// across the predecessor/successor link. When mouse-follows-focus is
// configured, the cursor is centered in the destination region — BSP
// only, per spec.
func (d *Dispatcher) Swap(spaceID uint32, target NavTarget) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Mode == workspace.Monocle {
		return d.swapMonocle(space, target)
	}
	return d.swapBSP(spaceID, space, target)
}

func (d *Dispatcher) swapBSP(spaceID uint32, space *workspace.Space, target NavTarget) error {
	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("swap: resolve active window: %v", err)
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

	space.Tree.SwapNodeIds(currentNode, targetNode)
	if err := d.applyAndNotify(space.Tree, space.Tree.Root()); err != nil {
		return err
	}

	if d.Config.MouseFollowsFocus {
		// SwapNodeIds exchanges WindowID, not position: the still-focused
		// window is now at targetNode's region, not currentNode's.
		d.centerMouseInRegion(space.Tree.Node(targetNode).Region)
	}
	return nil
}

func (d *Dispatcher) swapMonocle(space *workspace.Space, target NavTarget) error {
	focused := space.Monocle.Focused()
	if focused == nil {
		return nil
	}

	var other *workspace.MonocleNode
	switch target.Dir {
	case bsptree.West, bsptree.North:
		other = space.Monocle.Prev()
	case bsptree.East, bsptree.South:
		other = space.Monocle.Next()
	default:
		return nil
	}
	if other == nil || other == focused {
		return nil
	}

	focused.WindowID, other.WindowID = other.WindowID, focused.WindowID
	return nil
}
