package regionengine

import (
	"testing"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/region"
)

type fakeMover struct {
	moves map[uint32]region.IntRect
}

func newFakeMover() *fakeMover {
	return &fakeMover{moves: make(map[uint32]region.IntRect)}
}

func (f *fakeMover) MoveResizeWindow(windowID uint32, r region.IntRect) error {
	f.moves[windowID] = r
	return nil
}

func buildTwoLeafTree() (*bsptree.Tree, bsptree.NodeID) {
	t := bsptree.New()
	root := t.NewRoot(1)
	t.SplitLeaf(root, 2, false, bsptree.Vertical, 0.5)
	return t, t.Root()
}

func TestCreateNodeRegionRecursiveSplitsByRatio(t *testing.T) {
	tree, root := buildTwoLeafTree()
	tree.Node(root).Region = region.Rect{X: 0, Y: 0, Width: 1000, Height: 500}

	CreateNodeRegionRecursive(tree, root, 0)

	left := tree.Node(tree.Node(root).Left).Region
	right := tree.Node(tree.Node(root).Right).Region

	if left.Width != 500 || right.Width != 500 {
		t.Fatalf("expected a 50/50 vertical split, got left=%v right=%v", left, right)
	}
	if right.X != 500 {
		t.Fatalf("expected right region to start at x=500, got %v", right.X)
	}
}

func TestCreateNodeRegionHalvesForMode(t *testing.T) {
	tree := bsptree.New()
	root := tree.NewRoot(1)
	bounds := region.Rect{X: 0, Y: 0, Width: 1000, Height: 800}

	CreateNodeRegion(tree, root, Left, bounds, region.Offset{})
	left := tree.Node(root).Region
	if left.Width != 500 {
		t.Fatalf("expected Left mode to halve width to 500, got %v", left.Width)
	}

	CreateNodeRegion(tree, root, Right, bounds, region.Offset{})
	right := tree.Node(root).Region
	if right.Width != 500 || right.X != 500 {
		t.Fatalf("expected Right mode to occupy the second half, got %v", right)
	}
}

func TestApplyNodeRegionMovesEachLeafToItsRegion(t *testing.T) {
	tree, root := buildTwoLeafTree()
	tree.Node(root).Region = region.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	CreateNodeRegionRecursive(tree, root, 0)

	mover := newFakeMover()
	if err := ApplyNodeRegion(tree, root, Full, true, mover); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mover.moves) != 2 {
		t.Fatalf("expected 2 window moves, got %d", len(mover.moves))
	}
	if mover.moves[1].Width != 500 || mover.moves[2].X != 500 {
		t.Fatalf("unexpected move geometry: %+v", mover.moves)
	}
}

func TestApplyNodeRegionFullscreenZoomOverridesLeafRegion(t *testing.T) {
	tree, root := buildTwoLeafTree()
	tree.Node(root).Region = region.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	CreateNodeRegionRecursive(tree, root, 0)

	right := tree.Node(root).Right
	tree.Node(root).Zoom = right

	mover := newFakeMover()
	if err := ApplyNodeRegion(tree, root, Full, true, mover); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zoomedWindow := tree.Node(right).WindowID
	got := mover.moves[zoomedWindow]
	if got.Width != 1000 {
		t.Fatalf("expected fullscreen-zoomed window sized to root region, got %+v", got)
	}
}

func TestApplyNodeRegionParentZoomSizesToParentRegion(t *testing.T) {
	tree, root := buildTwoLeafTree()
	left := tree.Node(root).Left
	tree.SplitLeaf(left, 3, false, bsptree.Horizontal, 0.5)
	tree.Node(root).Region = region.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	CreateNodeRegionRecursive(tree, root, 0)

	zoomed := tree.Node(left).Left
	tree.Node(left).Zoom = zoomed // parent-zoom: a non-root node zooms one of its own children

	mover := newFakeMover()
	if err := ApplyNodeRegion(tree, root, Full, true, mover); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zoomedWindow := tree.Node(zoomed).WindowID
	got := mover.moves[zoomedWindow]
	if got.Width != 500 || got.Height != 500 {
		t.Fatalf("expected zoomed child sized to parent region 500x500, got %+v", got)
	}
}

func TestApplyNodeRegionIgnoresZoomWhenIncludeZoomFalse(t *testing.T) {
	tree, root := buildTwoLeafTree()
	tree.Node(root).Region = region.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	CreateNodeRegionRecursive(tree, root, 0)

	right := tree.Node(root).Right
	tree.Node(root).Zoom = right

	mover := newFakeMover()
	if err := ApplyNodeRegion(tree, root, Full, false, mover); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zoomedWindow := tree.Node(right).WindowID
	got := mover.moves[zoomedWindow]
	if got.Width != 500 {
		t.Fatalf("expected zoom ignored and leaf sized to its own region (500), got %+v", got)
	}
}
