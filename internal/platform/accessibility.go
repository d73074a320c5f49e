//go:build linux

package platform

import (
	"fmt"

	"github.com/trws/chunkwm-tiling/internal/command"
	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/search"
)

// Accessibility adapts a LinuxBackend to the command.Accessibility
// surface the dispatcher depends on.
//
// EWMH desktops are a single global sequence shared by every monitor —
// switching "desktop 2" switches it on every display at once, unlike
// the per-monitor virtual-space model the dispatcher's space/display
// split assumes. This adapter treats a space as an EWMH desktop index
// and approximates the per-monitor questions onto that flatter model:
// DisplayForSpace always answers with the currently active display,
// and SpacesOnDisplay lists every desktop, since none is pinned to one
// monitor. VisibleWindows only has geometry for the desktop that is
// actually current, since X11 doesn't report positions for windows on
// a desktop nobody has switched to.
type Accessibility struct {
	backend *LinuxBackend
}

// NewAccessibility builds a command.Accessibility backed by backend.
func NewAccessibility(backend *LinuxBackend) *Accessibility {
	return &Accessibility{backend: backend}
}

var _ command.Accessibility = (*Accessibility)(nil)

func rectToRegion(r Rect) region.Rect {
	return region.Rect{
		X:      float32(r.X),
		Y:      float32(r.Y),
		Width:  float32(r.Width),
		Height: float32(r.Height),
	}
}

func regionToRect(r region.IntRect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// MoveResizeWindow satisfies regionengine.WindowMover.
func (a *Accessibility) MoveResizeWindow(windowID uint32, r region.IntRect) error {
	return a.backend.MoveResize(WindowID(windowID), regionToRect(r))
}

func (a *Accessibility) ActiveSpace() (uint32, region.Rect, error) {
	desktop, err := a.backend.CurrentDesktop()
	if err != nil {
		return 0, region.Rect{}, err
	}
	display, err := a.backend.ActiveDisplay()
	if err != nil {
		return 0, region.Rect{}, err
	}
	return uint32(desktop), rectToRegion(display.Bounds), nil
}

func (a *Accessibility) ActiveWindowID() (uint32, error) {
	id, err := a.backend.ActiveWindow()
	return uint32(id), err
}

func (a *Accessibility) WindowRect(windowID uint32) (region.Rect, error) {
	rect, err := a.backend.WindowRect(WindowID(windowID))
	if err != nil {
		return region.Rect{}, err
	}
	return rectToRegion(rect), nil
}

// VisibleWindows lists the windows with known geometry on spaceID. It
// only has an answer when spaceID is the currently active desktop; see
// the type doc comment.
func (a *Accessibility) VisibleWindows(spaceID uint32) ([]search.Candidate, error) {
	current, err := a.backend.CurrentDesktop()
	if err != nil {
		return nil, err
	}
	if uint32(current) != spaceID {
		return nil, nil
	}

	displays, err := a.backend.Displays()
	if err != nil {
		return nil, err
	}

	var candidates []search.Candidate
	for _, d := range displays {
		windows, err := a.backend.ListWindowsOnDisplay(d.ID)
		if err != nil {
			continue
		}
		for _, w := range windows {
			candidates = append(candidates, search.Candidate{
				WindowID: uint32(w.ID),
				Rect:     rectToRegion(w.Bounds),
			})
		}
	}
	return candidates, nil
}

func (a *Accessibility) FocusWindow(windowID uint32) error {
	return a.backend.FocusWindow(WindowID(windowID))
}

func (a *Accessibility) WarpCursor(p region.Point) error {
	return a.backend.WarpPointer(int(p.X), int(p.Y))
}

// CursorPosition reports the pointer's current root-relative coordinates.
func (a *Accessibility) CursorPosition() (region.Point, error) {
	x, y, err := a.backend.CursorPosition()
	if err != nil {
		return region.Point{}, err
	}
	return region.Point{X: float32(x), Y: float32(y)}, nil
}

func (a *Accessibility) CloseWindow(windowID uint32) error {
	return a.backend.Close(WindowID(windowID))
}

func (a *Accessibility) DisplayBounds(spaceID uint32) (region.Rect, error) {
	displayID, err := a.DisplayForSpace(spaceID)
	if err != nil {
		return region.Rect{}, err
	}
	displays, err := a.backend.Displays()
	if err != nil {
		return region.Rect{}, err
	}
	for _, d := range displays {
		if d.ID == displayID {
			return rectToRegion(d.Bounds), nil
		}
	}
	return region.Rect{}, fmt.Errorf("display %d not found", displayID)
}

// DisplayForSpace always answers with the active display; see the
// type doc comment on why EWMH desktops can't be pinned to one.
func (a *Accessibility) DisplayForSpace(spaceID uint32) (int, error) {
	display, err := a.backend.ActiveDisplay()
	if err != nil {
		return 0, err
	}
	return display.ID, nil
}

// SpacesOnDisplay lists every desktop; see the type doc comment.
func (a *Accessibility) SpacesOnDisplay(displayID int) ([]uint32, error) {
	count, err := a.backend.DesktopCount()
	if err != nil {
		return nil, err
	}
	spaces := make([]uint32, count)
	for i := range spaces {
		spaces[i] = uint32(i)
	}
	return spaces, nil
}

func (a *Accessibility) DisplayCount() (int, error) {
	displays, err := a.backend.Displays()
	if err != nil {
		return 0, err
	}
	return len(displays), nil
}

func (a *Accessibility) SendWindowToDesktop(windowID uint32, desktopID uint32) error {
	return a.backend.SetWindowDesktop(WindowID(windowID), int(desktopID))
}

func (a *Accessibility) WindowInfo(windowID uint32) (command.WindowInfo, error) {
	details, err := a.backend.WindowDetails(WindowID(windowID))
	if err != nil {
		return command.WindowInfo{}, err
	}
	return command.WindowInfo{
		Owner:     details.Owner,
		Name:      details.Name,
		Role:      details.Role,
		Subrole:   details.Subrole,
		Level:     details.Level,
		Movable:   details.Movable,
		Resizable: details.Resizable,
	}, nil
}

func (a *Accessibility) IsWindowValid(windowID uint32) bool {
	return a.backend.IsWindowValid(WindowID(windowID))
}
