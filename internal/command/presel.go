package command

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/regionengine"
)

// UseInsertionPoint attaches a Preselect to the current node recording
// that the next window spawned while this leaf is the insertion point
// should split it in dir. Re-invoking the same direction, or passing
// DirNone ("cancel"), clears the existing preselect instead.
func (d *Dispatcher) UseInsertionPoint(spaceID uint32, dir bsptree.Direction) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}

	current, err := d.Access.ActiveWindowID()
	if err != nil {
		d.warnf("use insertion point: resolve active window: %v", err)
		return nil
	}
	node := space.Tree.FindByWindowID(space.Tree.Root(), current)
	if node == bsptree.NoNode {
		return nil
	}
	n := space.Tree.Node(node)

	if dir == bsptree.DirNone || (n.Preselect != nil && n.Preselect.Direction == dir) {
		n.Preselect = nil
		return nil
	}

	spawnLeft := dir == bsptree.West || dir == bsptree.North
	split := bsptree.Vertical
	if dir == bsptree.North || dir == bsptree.South {
		split = bsptree.Horizontal
	}

	mode := regionengine.Left
	switch dir {
	case bsptree.East:
		mode = regionengine.Right
	case bsptree.North:
		mode = regionengine.Upper
	case bsptree.South:
		mode = regionengine.Lower
	}

	// n.Region is already padded; pass a zero offset so the half-split
	// below doesn't pad it a second time.
	preselectTree := bsptree.New()
	overlay := preselectTree.NewRoot(0)
	regionengine.CreateNodeRegion(preselectTree, overlay, mode, n.Region, region.Offset{})

	n.Preselect = &bsptree.Preselect{
		Direction: dir,
		SpawnLeft: spawnLeft,
		Split:     split,
		Ratio:     d.Config.BSPSplitRatio,
		Region:    preselectTree.Node(overlay).Region,
	}

	// Drawing the overlay border itself is the accessibility bridge's
	// job; BorderHandle is left zero until the bridge assigns one.
	return nil
}
