// Package workspace owns the per-virtual-space tiling state: which
// layout mode a space is in, its BSP tree or monocle list, its offset
// and zoom state, and the acquire/release discipline that lets command
// handlers treat "the tree" as a stable pointer for the duration of one
// command.
package workspace

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/region"
)

// Mode names a virtual space's layout variant.
type Mode int

const (
	BSP Mode = iota
	Monocle
	Float
)

func (m Mode) String() string {
	switch m {
	case BSP:
		return "bsp"
	case Monocle:
		return "monocle"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Space is one virtual space's tiling state. Id identifies the display
// desktop this space corresponds to.
type Space struct {
	ID   uint32
	Mode Mode

	Tree    *bsptree.Tree
	Monocle *MonocleList

	offset       region.Offset
	offsetActive bool // false after "toggle offset"; offset values are kept, not discarded

	// AcquireCount is exported for the reconciler/query surface to
	// inspect; mutation is the registry's job alone.
	AcquireCount int

	// FloatWindows holds windows this space keeps outside its tree
	// entirely ("the float set", per the data model).
	FloatWindows map[uint32]struct{}
}

func newSpace(id uint32) *Space {
	return &Space{
		ID:           id,
		Mode:         BSP,
		Tree:         bsptree.New(),
		Monocle:      NewMonocleList(),
		offsetActive: true,
		FloatWindows: make(map[uint32]struct{}),
	}
}

// Offset returns the space's active padding, or the zero value if the
// offset has been toggled off (values are retained, not discarded).
func (s *Space) Offset() region.Offset {
	if !s.offsetActive {
		return region.Offset{}
	}
	return s.offset
}

// SetOffset replaces the stored offset values and re-activates them.
func (s *Space) SetOffset(o region.Offset) {
	s.offset = o
	s.offsetActive = true
}

// ToggleOffset flips whether the stored offset is currently applied,
// without discarding the stored values.
func (s *Space) ToggleOffset() {
	s.offsetActive = !s.offsetActive
}

// Zoom reports the fullscreen-zoomed node id for this space's tree, or
// bsptree.NoNode if nothing is zoomed. Mirrors the data model's
// "Zoom (= Tree->Zoom)" derivation rather than tracking it separately.
func (s *Space) Zoom() bsptree.NodeID {
	if s.Tree == nil || s.Tree.Empty() {
		return bsptree.NoNode
	}
	return s.Tree.Node(s.Tree.Root()).Zoom
}
