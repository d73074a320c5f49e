package workspace

import "github.com/trws/chunkwm-tiling/internal/region"

// MonocleNode is one entry of a monocle space's flat doubly-linked
// list. Unlike bsptree.Node, Prev/Next are list neighbors, not subtree
// pointers, and there is no Parent: the whole point of keeping this
// variant separate is that monocle traversal never needs to walk a
// tree shape.
type MonocleNode struct {
	WindowID uint32
	Prev     *MonocleNode
	Next     *MonocleNode
	Region   region.Rect
}

// MonocleList is the flat window list a monocle-mode space cycles
// through. All windows share the same region (the padded display
// bounds); only one is visible/focused at a time, the rest stacked
// beneath it off-screen-equivalent from the tiling engine's point of
// view (the accessibility bridge handles actual stacking order).
type MonocleList struct {
	head  *MonocleNode
	tail  *MonocleNode
	focus *MonocleNode
}

// NewMonocleList returns an empty monocle list.
func NewMonocleList() *MonocleList {
	return &MonocleList{}
}

// Empty reports whether the list has no windows.
func (l *MonocleList) Empty() bool {
	return l.head == nil
}

// Append adds windowID to the end of the list and returns its node.
func (l *MonocleList) Append(windowID uint32) *MonocleNode {
	n := &MonocleNode{WindowID: windowID}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.Prev = l.tail
		l.tail.Next = n
		l.tail = n
	}
	if l.focus == nil {
		l.focus = n
	}
	return n
}

// Remove unlinks n from the list.
func (l *MonocleList) Remove(n *MonocleNode) {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		l.head = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		l.tail = n.Prev
	}
	if l.focus == n {
		l.focus = n.Next
		if l.focus == nil {
			l.focus = l.head
		}
	}
}

// Find returns the node bound to windowID, or nil.
func (l *MonocleList) Find(windowID uint32) *MonocleNode {
	for n := l.head; n != nil; n = n.Next {
		if n.WindowID == windowID {
			return n
		}
	}
	return nil
}

// Focused returns the currently focused node, or nil if empty.
func (l *MonocleList) Focused() *MonocleNode {
	return l.focus
}

// SetFocused sets the focused node explicitly (e.g. after a click).
func (l *MonocleList) SetFocused(n *MonocleNode) {
	l.focus = n
}

// Next returns the focused node's successor, wrapping to head.
func (l *MonocleList) Next() *MonocleNode {
	if l.focus == nil {
		return nil
	}
	if l.focus.Next != nil {
		return l.focus.Next
	}
	return l.head
}

// Prev returns the focused node's predecessor, wrapping to tail.
func (l *MonocleList) Prev() *MonocleNode {
	if l.focus == nil {
		return nil
	}
	if l.focus.Prev != nil {
		return l.focus.Prev
	}
	return l.tail
}

// All returns every window id in list order.
func (l *MonocleList) All() []uint32 {
	var out []uint32
	for n := l.head; n != nil; n = n.Next {
		out = append(out, n.WindowID)
	}
	return out
}
