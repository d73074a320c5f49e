package command

import "github.com/trws/chunkwm-tiling/internal/bsptree"

// Rotate rotates the whole tree by degrees (90, 180, or 270), then
// recomputes and reapplies every region under the root.
func (d *Dispatcher) Rotate(spaceID uint32, degrees int) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	space.Tree.RotateBSPTree(space.Tree.Root(), degrees)
	return d.recomputeApplyAndNotify(space, space.Tree.Root())
}

// Mirror flips the tree across axis, then recomputes and reapplies
// every region under the root.
func (d *Dispatcher) Mirror(spaceID uint32, axis bsptree.Split) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	space.Tree.MirrorBSPTree(space.Tree.Root(), axis)
	return d.recomputeApplyAndNotify(space, space.Tree.Root())
}

// Equalize resets every internal node's ratio to its leaf-count share,
// then recomputes and reapplies every region under the root.
func (d *Dispatcher) Equalize(spaceID uint32) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	space.Tree.EqualizeSubtree(space.Tree.Root())
	return d.recomputeApplyAndNotify(space, space.Tree.Root())
}

// ToggleSplit flips the insertion-point node's parent between
// Horizontal and Vertical, then recomputes and reapplies regions under
// that parent.
func (d *Dispatcher) ToggleSplit(spaceID uint32) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("toggle split: resolve active window: %v", err)
		return nil
	}
	node := space.Tree.FindByWindowID(space.Tree.Root(), current)
	if node == bsptree.NoNode {
		return nil
	}
	parentID := space.Tree.Node(node).Parent
	if parentID == bsptree.NoNode {
		return nil
	}

	parent := space.Tree.Node(parentID)
	switch parent.Split {
	case bsptree.Horizontal:
		parent.Split = bsptree.Vertical
	case bsptree.Vertical:
		parent.Split = bsptree.Horizontal
	}

	return d.recomputeApplyAndNotify(space, parentID)
}
