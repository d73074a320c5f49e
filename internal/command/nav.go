package command

import (
	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/search"
)

// NavTarget is the resolved form of a Focus/Swap/Warp/AdjustRatio
// argument: either one of the four compass directions (driving
// geometric search) or one of the undirected tokens (driving tree
// traversal). Keeping these as one small sum type, translated once at
// the command-channel parsing boundary, avoids stringly-typed dispatch
// inside every handler.
type NavTarget struct {
	Dir   bsptree.Direction
	Token search.UndirectedToken
}

func (n NavTarget) isToken() bool {
	return n.Token != ""
}

// ParseNavTarget recognizes either a compass direction or an undirected
// token.
func ParseNavTarget(s string) (NavTarget, bool) {
	if dir, ok := bsptree.ParseDirection(s); ok {
		return NavTarget{Dir: dir}, true
	}
	if tok, ok := search.ParseUndirectedToken(s); ok {
		return NavTarget{Token: tok}, true
	}
	return NavTarget{}, false
}
