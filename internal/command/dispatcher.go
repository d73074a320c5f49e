// Package command implements the text command-channel's verb handlers:
// focus/swap/warp/ratio/zoom/preselect/rotate/offset/float/desktop/
// grid/serialize. Each handler acquires its workspace, mutates the
// tree, reapplies regions, and releases — per the shared prologue
// every command follows.
package command

import (
	"log"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/config"
	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/regionengine"
	"github.com/trws/chunkwm-tiling/internal/search"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// Accessibility is the narrow surface the command interpreter needs
// from the window-system bridge. Satisfied in production by
// internal/platform's Backend (adapted), and by an in-memory fake in
// tests.
type Accessibility interface {
	regionengine.WindowMover

	ActiveSpace() (spaceID uint32, displayBounds region.Rect, err error)
	ActiveWindowID() (windowID uint32, err error)
	WindowRect(windowID uint32) (region.Rect, error)
	VisibleWindows(spaceID uint32) ([]search.Candidate, error)
	FocusWindow(windowID uint32) error
	WarpCursor(p region.Point) error
	CursorPosition() (region.Point, error)
	CloseWindow(windowID uint32) error

	DisplayBounds(spaceID uint32) (region.Rect, error)
	DisplayForSpace(spaceID uint32) (displayID int, err error)
	SpacesOnDisplay(displayID int) ([]uint32, error)
	DisplayCount() (int, error)
	SendWindowToDesktop(windowID uint32, desktopID uint32) error

	// WindowInfo and IsWindowValid back the read-only query surface
	// only; no mutating command needs them.
	WindowInfo(windowID uint32) (WindowInfo, error)
	IsWindowValid(windowID uint32) bool
}

// WindowInfo is the descriptive (non-geometric) detail the query
// surface reports about a window: owner application, title, and the
// role/subrole/level/movable/resizable classification the
// accessibility bridge assigns it.
type WindowInfo struct {
	Owner     string
	Name      string
	Role      string
	Subrole   string
	Level     int
	Movable   bool
	Resizable bool
}

// DockHelper is the narrow surface for the 3-message dock-helper
// protocol; a no-op implementation (or connection failure) is
// tolerated per the I/O-failure taxonomy — logged, not fatal.
type DockHelper interface {
	NotifyWindowMove(windowID uint32, r region.IntRect) error
	NotifyWindowLevel(windowID uint32, level int) error
	NotifyWindowSticky(windowID uint32, sticky bool) error
}

// Dispatcher holds every collaborator a command handler needs. Config
// is the snapshot handed to New; handlers read it rather than the
// config file, and it is not re-read per command.
type Dispatcher struct {
	Access   Accessibility
	Dock     DockHelper
	Registry *workspace.Registry
	Config   config.Config
	Log      *log.Logger

	// FS backs Serialize/Deserialize; nil means DefaultFilesystem.
	FS Filesystem

	// stickyWindows tracks which windows are pinned to every desktop.
	// Sticky is orthogonal to which space owns a window's float-set
	// membership, so it's tracked per-dispatcher rather than per-space.
	stickyWindows map[uint32]bool
}

// New returns a Dispatcher with a default logger if one isn't supplied.
func New(access Accessibility, dock DockHelper, registry *workspace.Registry, cfg config.Config, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		Access:        access,
		Dock:          dock,
		Registry:      registry,
		Config:        cfg,
		Log:           logger,
		stickyWindows: make(map[uint32]bool),
	}
}

// warnf logs a precondition-violation style message: WARN + abort the
// current command, per the error taxonomy.
func (d *Dispatcher) warnf(format string, args ...any) {
	d.Log.Printf("WARN "+format, args...)
}

// centerMouseInRegion warps the cursor to r's center, but only when the
// cursor isn't already somewhere inside r — avoids a pointless warp
// (and the spurious focus-follows-mouse event it would generate) when
// the mouse was already resting in the destination.
func (d *Dispatcher) centerMouseInRegion(r region.Rect) {
	pos, err := d.Access.CursorPosition()
	if err == nil && region.Contains(r, pos) {
		return
	}
	if err := d.Access.WarpCursor(r.Center()); err != nil {
		d.Log.Printf("warp cursor failed: %v", err)
	}
}

// notifyMove best-effort informs the dock helper of a window's new
// geometry; a failure here is an external I/O failure (log + continue,
// never abort the command).
func (d *Dispatcher) notifyMove(windowID uint32, r region.IntRect) {
	if d.Dock == nil {
		return
	}
	if err := d.Dock.NotifyWindowMove(windowID, r); err != nil {
		d.Log.Printf("dock helper notify failed: %v", err)
	}
}

// recomputeApplyAndNotify recomputes every descendant region under id
// from id's own Region (which must already be set), applies them to
// windows, and notifies the dock helper. Used after any tree-shape or
// ratio change under id.
func (d *Dispatcher) recomputeApplyAndNotify(space *workspace.Space, id bsptree.NodeID) error {
	regionengine.CreateNodeRegionRecursive(space.Tree, id, space.Offset().Gap)
	return d.applyAndNotify(space.Tree, id)
}

// applyAndNotify applies every leaf's already-computed region under
// root and notifies the dock helper for each.
func (d *Dispatcher) applyAndNotify(t *bsptree.Tree, root bsptree.NodeID) error {
	if err := regionengine.ApplyNodeRegion(t, root, regionengine.Full, true, d.Access); err != nil {
		return err
	}
	for _, leaf := range t.Leaves(root) {
		n := t.Node(leaf)
		d.notifyMove(n.WindowID, n.Region.Round())
	}
	return nil
}
