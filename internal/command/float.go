package command

import "github.com/trws/chunkwm-tiling/internal/bsptree"

// ToggleWindowFloat moves the current window between the tree and the
// space's float set. Entering float untiles the node (collapsing its
// sibling into the parent); leaving float re-tiles it by splitting the
// tree's biggest leaf vertically (or as the root of an empty tree).
func (d *Dispatcher) ToggleWindowFloat(spaceID uint32) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("toggle window float: resolve active window: %v", err)
		return nil
	}

	if _, floating := space.FloatWindows[current]; floating {
		delete(space.FloatWindows, current)
		if space.Tree == nil || space.Tree.Empty() {
			space.Tree.NewRoot(current)
		} else {
			leaf := space.Tree.BiggestLeaf(space.Tree.Root())
			space.Tree.SplitLeaf(leaf, current, false, bsptree.Vertical, d.Config.BSPSplitRatio)
		}
		return d.recomputeApplyAndNotify(space, space.Tree.Root())
	}

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}
	node := space.Tree.FindByWindowID(space.Tree.Root(), current)
	if node == bsptree.NoNode {
		return nil
	}
	space.Tree.RemoveLeaf(node)
	space.FloatWindows[current] = struct{}{}

	if !space.Tree.Empty() {
		if err := d.recomputeApplyAndNotify(space, space.Tree.Root()); err != nil {
			return err
		}
	}
	return nil
}

// ToggleWindowSticky marks the current window visible on every
// desktop. Sticky implies float: turning sticky on also floats the
// window (if it isn't already); turning sticky off leaves its float
// state untouched.
func (d *Dispatcher) ToggleWindowSticky(spaceID uint32) error {
	space, release := d.Registry.Acquire(spaceID)
	current, err := d.Access.ActiveWindowID()
	if err != nil {
		release()
		d.warnf("toggle window sticky: resolve active window: %v", err)
		return nil
	}
	_, alreadyFloating := space.FloatWindows[current]
	release()

	nowSticky := !d.stickyWindows[current]
	if nowSticky && !alreadyFloating {
		if err := d.ToggleWindowFloat(spaceID); err != nil {
			return err
		}
	}

	d.stickyWindows[current] = nowSticky
	d.notifySticky(current, nowSticky)
	return nil
}

func (d *Dispatcher) notifySticky(windowID uint32, sticky bool) {
	if d.Dock == nil {
		return
	}
	if err := d.Dock.NotifyWindowSticky(windowID, sticky); err != nil {
		d.Log.Printf("dock helper notify failed: %v", err)
	}
}
