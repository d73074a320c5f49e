package command

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/search"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// Focus moves input focus to target from the window currently at the
// insertion point. BSP spaces try undirected search first (prev/next/
// biggest map directly to tree traversal, compass directions go
// through geometric search); Monocle spaces follow the flat list and
// only recognize the compass directions, treated as wrap-around
// prev/next. Fails silently (no-op) if nothing qualifies.
func (d *Dispatcher) Focus(spaceID uint32, target NavTarget) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Mode == workspace.Monocle {
		return d.focusMonocle(space, target)
	}
	return d.focusBSP(spaceID, space, target)
}

// resolveTarget finds the node a compass-direction Focus/Swap/Warp/
// AdjustRatio should act on via geometric search over every visible
// window in the space.
func (d *Dispatcher) resolveTarget(spaceID uint32, space *workspace.Space, current bsptree.NodeID, dir bsptree.Direction) (bsptree.NodeID, bool) {
	currentRect := space.Tree.Node(current).Region
	currentWindow := space.Tree.Node(current).WindowID

	candidates, err := d.Access.VisibleWindows(spaceID)
	if err != nil {
		d.warnf("resolve target: list visible windows: %v", err)
		return bsptree.NoNode, false
	}

	self := search.Candidate{WindowID: currentWindow, Rect: currentRect}
	displayBounds, err := d.Access.DisplayBounds(spaceID)
	if err != nil {
		d.warnf("resolve target: display bounds: %v", err)
		return bsptree.NoNode, false
	}

	best, found := search.Nearest(self, candidates, dir, d.Config.MonitorFocusCycle, displayBounds)
	if !found {
		return bsptree.NoNode, false
	}
	node := space.Tree.FindByWindowID(space.Tree.Root(), best.WindowID)
	return node, node != bsptree.NoNode
}

func (d *Dispatcher) resolveNav(spaceID uint32, space *workspace.Space, current bsptree.NodeID, target NavTarget) (bsptree.NodeID, bool) {
	if target.isToken() {
		return search.ResolveUndirected(space.Tree, space.Tree.Root(), current, target.Token)
	}
	return d.resolveTarget(spaceID, space, current, target.Dir)
}

func (d *Dispatcher) focusBSP(spaceID uint32, space *workspace.Space, target NavTarget) error {
	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("focus: resolve active window: %v", err)
		return nil
	}
	currentNode := space.Tree.FindByWindowID(space.Tree.Root(), current)
	if currentNode == bsptree.NoNode {
		return nil
	}

	node, found := d.resolveNav(spaceID, space, currentNode, target)
	if !found {
		return nil // monitor-wrap fallback belongs to the caller, which knows the monitor list
	}
	return d.Access.FocusWindow(space.Tree.Node(node).WindowID)
}

func (d *Dispatcher) focusMonocle(space *workspace.Space, target NavTarget) error {
	var next *workspace.MonocleNode
	switch target.Dir {
	case bsptree.West, bsptree.North:
		next = space.Monocle.Prev()
	case bsptree.East, bsptree.South:
		next = space.Monocle.Next()
	default:
		return nil
	}
	if next == nil {
		return nil
	}
	space.Monocle.SetFocused(next)
	return d.Access.FocusWindow(next.WindowID)
}
