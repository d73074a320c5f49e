package bsptree

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeToBuffer renders the subtree rooted at id as an opaque textual
// buffer: a whitespace-separated pre-order token stream. The format's
// only contract is that DecodeFromBuffer(EncodeToBuffer(t, root)) is
// equivalent under all traversal operations, with the same Ratio/Split
// at every node; leaf-to-window binding is re-established by the caller.
func EncodeToBuffer(t *Tree, id NodeID) string {
	var b strings.Builder
	encode(t, id, &b)
	return b.String()
}

func encode(t *Tree, id NodeID, b *strings.Builder) {
	n := t.Node(id)
	if n.IsLeaf() {
		fmt.Fprintf(b, "L %d\n", n.WindowID)
		return
	}
	splitTok := "H"
	if n.Split == Vertical {
		splitTok = "V"
	}
	fmt.Fprintf(b, "N %s %s\n", splitTok, strconv.FormatFloat(float64(n.Ratio), 'f', -1, 32))
	encode(t, n.Left, b)
	encode(t, n.Right, b)
}

// DecodeFromBuffer parses a buffer produced by EncodeToBuffer into a
// fresh tree, returning the new root id. Window ids are restored as
// written; the caller is responsible for re-tiling any window whose id
// no longer corresponds to a live window.
func DecodeFromBuffer(buf string) (*Tree, NodeID, error) {
	lines := strings.Split(strings.TrimRight(buf, "\n"), "\n")
	t := New()
	if len(lines) == 0 || lines[0] == "" {
		return t, NoNode, nil
	}
	pos := 0
	root, err := decode(t, lines, &pos, NoNode)
	if err != nil {
		return nil, NoNode, err
	}
	t.root = root
	return t, root, nil
}

func decode(t *Tree, lines []string, pos *int, parent NodeID) (NodeID, error) {
	if *pos >= len(lines) {
		return NoNode, fmt.Errorf("bsptree: unexpected end of buffer")
	}
	line := lines[*pos]
	*pos++

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return NoNode, fmt.Errorf("bsptree: empty line in buffer")
	}

	switch fields[0] {
	case "L":
		if len(fields) != 2 {
			return NoNode, fmt.Errorf("bsptree: malformed leaf line %q", line)
		}
		wid, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return NoNode, fmt.Errorf("bsptree: malformed window id %q: %w", fields[1], err)
		}
		id := t.alloc(Node{WindowID: uint32(wid), Parent: parent, Left: NoNode, Right: NoNode, Zoom: NoNode})
		return id, nil

	case "N":
		if len(fields) != 3 {
			return NoNode, fmt.Errorf("bsptree: malformed internal line %q", line)
		}
		split := Horizontal
		if fields[1] == "V" {
			split = Vertical
		}
		ratio, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return NoNode, fmt.Errorf("bsptree: malformed ratio %q: %w", fields[2], err)
		}

		id := t.alloc(Node{Parent: parent, Split: split, Ratio: float32(ratio), Left: NoNode, Right: NoNode, Zoom: NoNode})

		left, err := decode(t, lines, pos, id)
		if err != nil {
			return NoNode, err
		}
		right, err := decode(t, lines, pos, id)
		if err != nil {
			return NoNode, err
		}
		t.Node(id).Left = left
		t.Node(id).Right = right
		return id, nil

	default:
		return NoNode, fmt.Errorf("bsptree: unknown token %q", fields[0])
	}
}
