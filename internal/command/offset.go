package command

import (
	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// ToggleOffset flips whether the space's stored padding is currently
// applied, without discarding the stored values, then recomputes the
// full tree from the display bounds.
func (d *Dispatcher) ToggleOffset(spaceID uint32) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	space.ToggleOffset()
	return d.rebuildRootRegion(spaceID, space)
}

// AdjustPadding steps every side of the space's offset by the
// configured padding step (or -step), clamped to a non-negative lower
// bound, then recomputes the full tree.
func (d *Dispatcher) AdjustPadding(spaceID uint32, grow bool) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	step := d.Config.PaddingStepSize
	if !grow {
		step = -step
	}
	o := space.Offset()
	o.Top = clampNonNegative(o.Top + step)
	o.Bottom = clampNonNegative(o.Bottom + step)
	o.Left = clampNonNegative(o.Left + step)
	o.Right = clampNonNegative(o.Right + step)
	space.SetOffset(o)

	return d.rebuildRootRegion(spaceID, space)
}

// AdjustGap steps the space's inter-sibling gap by the configured gap
// step (or -step), clamped to a non-negative lower bound, then
// recomputes the full tree.
func (d *Dispatcher) AdjustGap(spaceID uint32, grow bool) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	step := d.Config.GapStepSize
	if !grow {
		step = -step
	}
	o := space.Offset()
	o.Gap = clampNonNegative(o.Gap + step)
	space.SetOffset(o)

	return d.rebuildRootRegion(spaceID, space)
}

func clampNonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

// rebuildRootRegion recomputes the root's region from the current
// display bounds and offset, then recomputes and reapplies every
// descendant region.
func (d *Dispatcher) rebuildRootRegion(spaceID uint32, space *workspace.Space) error {
	if space.Tree == nil || space.Tree.Empty() {
		return nil
	}
	bounds, err := d.Access.DisplayBounds(spaceID)
	if err != nil {
		d.warnf("rebuild root region: display bounds: %v", err)
		return nil
	}
	space.Tree.Node(space.Tree.Root()).Region = region.Pad(bounds, space.Offset())
	return d.recomputeApplyAndNotify(space, space.Tree.Root())
}
