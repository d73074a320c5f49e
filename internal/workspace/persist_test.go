package workspace

import (
	"testing"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/region"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	s := newSpace(7)
	root := s.Tree.NewRoot(1)
	s.Tree.SplitLeaf(root, 2, false, bsptree.Vertical, 0.4)
	s.SetOffset(region.Offset{Gap: 3})

	treeBuf, metaBuf, err := Serialize(s)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	restored, err := Deserialize(7, treeBuf, metaBuf)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	if restored.Mode != BSP {
		t.Fatalf("expected mode bsp, got %v", restored.Mode)
	}
	if restored.Offset().Gap != 3 {
		t.Fatalf("expected gap 3 preserved, got %v", restored.Offset().Gap)
	}
	if restored.Tree.Empty() {
		t.Fatalf("expected tree restored, got empty")
	}
	if got := restored.Tree.Node(restored.Tree.Root()).Ratio; got != 0.4 {
		t.Fatalf("expected ratio 0.4 preserved, got %v", got)
	}
}
