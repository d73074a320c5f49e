package daemon

import (
	"log/slog"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// StateSynchronizer repairs drift between the tiling registry and the
// live window set: a window closed out from under the tree leaves a
// leaf bound to a dead id, and a window that existed before the daemon
// started needs its leaf re-bound rather than re-created.
type StateSynchronizer struct {
	registry *workspace.Registry
	logger   *slog.Logger
}

// NewStateSynchronizer creates a new state synchronizer over registry.
func NewStateSynchronizer(registry *workspace.Registry, logger *slog.Logger) *StateSynchronizer {
	return &StateSynchronizer{registry: registry, logger: logger}
}

// HandleWindowClosed removes windowID's leaf from whichever space
// currently holds it, collapsing its sibling the same way an explicit
// close-window command would. A no-op if the window isn't tracked.
func (s *StateSynchronizer) HandleWindowClosed(windowID uint32) {
	for _, spaceID := range s.registry.Spaces() {
		space, release := s.registry.Acquire(spaceID)

		if n := space.Monocle.Find(windowID); n != nil {
			space.Monocle.Remove(n)
			s.logger.Info("removed closed window from monocle list", "window_id", windowID, "space", spaceID)
			release()
			return
		}

		delete(space.FloatWindows, windowID)

		if space.Tree != nil && !space.Tree.Empty() {
			node := space.Tree.FindByWindowID(space.Tree.Root(), windowID)
			if node != bsptree.NoNode {
				space.Tree.RemoveLeaf(node)
				s.logger.Info("removed closed window from tiling tree", "window_id", windowID, "space", spaceID)
				release()
				return
			}
		}
		release()
	}
}

// Rebind re-associates a live window with an existing leaf that was
// persisted holding its id, instead of re-tiling it as a new window,
// for a space whose tree was restored from a persisted layout.
// A no-op if no leaf in the restored tree references windowID (the
// window will be picked up as new the next time it's tiled).
func (s *StateSynchronizer) Rebind(spaceID uint32, windowID uint32) bool {
	space, release := s.registry.Acquire(spaceID)
	defer release()

	if space.Tree == nil || space.Tree.Empty() {
		return false
	}
	return space.Tree.FindByWindowID(space.Tree.Root(), windowID) != bsptree.NoNode
}
