package command

import "github.com/trws/chunkwm-tiling/internal/bsptree"

// ToggleFullscreenZoom toggles the current node as the space's
// fullscreen-zoomed node (stored on the tree root's Zoom field).
// Toggling a zoom mode on a node first clears any competing zoom on
// the same workspace, since fullscreen-zoom and parent-zoom are
// mutually exclusive for the same node.
func (d *Dispatcher) ToggleFullscreenZoom(spaceID uint32) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("toggle fullscreen zoom: resolve active window: %v", err)
		return nil
	}
	node := space.Tree.FindByWindowID(space.Tree.Root(), current)
	if node == bsptree.NoNode {
		return nil
	}

	root := space.Tree.Node(space.Tree.Root())
	if root.Zoom == node {
		root.Zoom = bsptree.NoNode
	} else {
		clearParentZoomOf(space.Tree, node)
		root.Zoom = node
	}

	return d.applyAndNotify(space.Tree, space.Tree.Root())
}

// ToggleParentZoom toggles the current node as zoomed onto its own
// parent's region (stored on the parent's Zoom field).
func (d *Dispatcher) ToggleParentZoom(spaceID uint32) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("toggle parent zoom: resolve active window: %v", err)
		return nil
	}
	node := space.Tree.FindByWindowID(space.Tree.Root(), current)
	if node == bsptree.NoNode {
		return nil
	}
	parentID := space.Tree.Node(node).Parent
	if parentID == bsptree.NoNode {
		return nil // root has no parent to zoom onto
	}

	if root := space.Tree.Node(space.Tree.Root()); root.Zoom == node {
		return nil // fullscreen-zoomed already; mutually exclusive, refuse silently
	}

	parent := space.Tree.Node(parentID)
	if parent.Zoom == node {
		parent.Zoom = bsptree.NoNode
	} else {
		parent.Zoom = node
	}

	return d.applyAndNotify(space.Tree, space.Tree.Root())
}

// clearParentZoomOf clears any parent-zoom referencing node, keeping
// fullscreen-zoom and parent-zoom mutually exclusive for the same
// node.
func clearParentZoomOf(t *bsptree.Tree, node bsptree.NodeID) {
	parentID := t.Node(node).Parent
	if parentID == bsptree.NoNode {
		return
	}
	parent := t.Node(parentID)
	if parent.Zoom == node {
		parent.Zoom = bsptree.NoNode
	}
}
