package search

import "github.com/trws/chunkwm-tiling/internal/bsptree"

// UndirectedToken names one of the non-geometric navigation tokens.
type UndirectedToken string

const (
	TokenPrev    UndirectedToken = "prev"
	TokenNext    UndirectedToken = "next"
	TokenBiggest UndirectedToken = "biggest"
)

// ParseUndirectedToken recognizes the three undirected navigation
// tokens the command-channel parser accepts alongside the four
// compass directions.
func ParseUndirectedToken(s string) (UndirectedToken, bool) {
	switch UndirectedToken(s) {
	case TokenPrev, TokenNext, TokenBiggest:
		return UndirectedToken(s), true
	default:
		return "", false
	}
}

// ResolveUndirected consults the tree traversal directly rather than
// the candidate-set distance search used for compass directions: these
// tokens are positional within the tree, not geometric.
func ResolveUndirected(t *bsptree.Tree, root, current bsptree.NodeID, tok UndirectedToken) (bsptree.NodeID, bool) {
	switch tok {
	case TokenPrev:
		n := t.PrevLeaf(current)
		return n, n != bsptree.NoNode
	case TokenNext:
		n := t.NextLeaf(current)
		return n, n != bsptree.NoNode
	case TokenBiggest:
		n := t.BiggestLeaf(root)
		return n, n != bsptree.NoNode
	default:
		return bsptree.NoNode, false
	}
}
