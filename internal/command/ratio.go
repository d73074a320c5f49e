package command

import "github.com/trws/chunkwm-tiling/internal/bsptree"

// AdjustRatio finds the node in target's direction, computes the
// lowest common ancestor of the current node and the target, and steps
// the LCA's ratio by step, as given by the caller.
//
// Sign convention: the ratio is decreased when the current (source)
// node lies in the LCA's left subtree, increased otherwise. This
// follows the written rule exactly rather than the opposite
// convention the upstream implementation this is modeled on actually
// used, since the rule is stated explicitly rather than left silent.
func (d *Dispatcher) AdjustRatio(spaceID uint32, target NavTarget, step float32) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("adjust ratio: resolve active window: %v", err)
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

	lca := space.Tree.LowestCommonAncestor(currentNode, targetNode)
	if lca == bsptree.NoNode {
		return nil
	}

	delta := step
	if space.Tree.IsInSubtree(space.Tree.Node(lca).Left, currentNode) {
		delta = -step
	}

	currentRatio := space.Tree.Node(lca).Ratio
	if !space.Tree.SetRatio(lca, currentRatio+delta) {
		return nil // out-of-range adjustment silently refused
	}

	return d.recomputeApplyAndNotify(space, lca)
}
