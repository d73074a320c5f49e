// Package query implements the read-only counterpart to
// internal/command: op codes that inspect focused window/desktop/
// monitor state and write a short text response to a caller-supplied
// sink, without mutating anything. It reuses the command dispatcher's
// collaborators rather than opening its own connection to the
// accessibility bridge.
package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/trws/chunkwm-tiling/internal/command"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// Surface answers read-only queries against a command.Dispatcher.
type Surface struct {
	d *command.Dispatcher
}

// New wraps a dispatcher for querying.
func New(d *command.Dispatcher) *Surface {
	return &Surface{d: d}
}

// emptyDesktopResponse reproduces, verbatim, the response an empty
// active-space window list returned historically — a defect in the
// implementation this is modeled on (it indexed a heap pointer with
// sizeof(Buffer) rather than the list's actual length), preserved here
// as the literal empty-case string rather than "fixed" into something
// more sensible.
const emptyDesktopResponse = "desktop is empty..\n"

// FocusedWindow writes the focused window's id, owner, name, tag
// (containing space id), and float flag.
func (s *Surface) FocusedWindow(w io.Writer, spaceID uint32) error {
	windowID, err := s.d.Access.ActiveWindowID()
	if err != nil {
		return fmt.Errorf("query focused window: %w", err)
	}
	info, err := s.d.Access.WindowInfo(windowID)
	if err != nil {
		return fmt.Errorf("query focused window: %w", err)
	}

	space, release := s.d.Registry.Acquire(spaceID)
	_, floating := space.FloatWindows[windowID]
	release()

	fmt.Fprintf(w, "id=%d owner=%s name=%s tag=%d float=%t\n",
		windowID, info.Owner, info.Name, spaceID, floating)
	return nil
}

// WindowDetails writes one window's full descriptive record.
func (s *Surface) WindowDetails(w io.Writer, windowID uint32) error {
	info, err := s.d.Access.WindowInfo(windowID)
	if err != nil {
		return fmt.Errorf("query window details: %w", err)
	}
	fmt.Fprintf(w, "id=%d level=%d role=%s subrole=%s movable=%t resizable=%t owner=%s name=%s\n",
		windowID, info.Level, info.Role, info.Subrole, info.Movable, info.Resizable, info.Owner, info.Name)
	return nil
}

// FocusedDesktop writes the active space's id and layout mode.
func (s *Surface) FocusedDesktop(w io.Writer, spaceID uint32) error {
	space, release := s.d.Registry.Acquire(spaceID)
	mode := space.Mode
	release()

	fmt.Fprintf(w, "id=%d mode=%s\n", spaceID, mode)
	return nil
}

// WindowsForActiveSpace writes one line per window bound to spaceID
// (tiled, monocled, or floating), each window id suffixed " (invalid)"
// if it fails IsWindowValid. An empty space reproduces the literal
// historical defect string instead of an empty line.
func (s *Surface) WindowsForActiveSpace(w io.Writer, spaceID uint32) error {
	space, release := s.d.Registry.Acquire(spaceID)
	ids := collectWindowIDs(space)
	release()

	if len(ids) == 0 {
		_, err := io.WriteString(w, emptyDesktopResponse)
		return err
	}

	for _, id := range ids {
		suffix := ""
		if !s.d.Access.IsWindowValid(id) {
			suffix = " (invalid)"
		}
		fmt.Fprintf(w, "%d%s\n", id, suffix)
	}
	return nil
}

func collectWindowIDs(space *workspace.Space) []uint32 {
	var ids []uint32
	if space.Tree != nil && !space.Tree.Empty() {
		for _, leaf := range space.Tree.Leaves(space.Tree.Root()) {
			ids = append(ids, space.Tree.Node(leaf).WindowID)
		}
	}
	ids = append(ids, space.Monocle.All()...)
	for id := range space.FloatWindows {
		ids = append(ids, id)
	}
	return ids
}

// FocusedMonitor writes the display id hosting spaceID.
func (s *Surface) FocusedMonitor(w io.Writer, spaceID uint32) error {
	displayID, err := s.d.Access.DisplayForSpace(spaceID)
	if err != nil {
		return fmt.Errorf("query focused monitor: %w", err)
	}
	fmt.Fprintf(w, "id=%d\n", displayID)
	return nil
}

// MonitorCount writes the number of active displays.
func (s *Surface) MonitorCount(w io.Writer) error {
	count, err := s.d.Access.DisplayCount()
	if err != nil {
		return fmt.Errorf("query monitor count: %w", err)
	}
	fmt.Fprintf(w, "count=%d\n", count)
	return nil
}

// DesktopsForMonitor writes the space ids hosted on displayID.
func (s *Surface) DesktopsForMonitor(w io.Writer, displayID int) error {
	spaces, err := s.d.Access.SpacesOnDisplay(displayID)
	if err != nil {
		return fmt.Errorf("query desktops for monitor: %w", err)
	}
	strs := make([]string, len(spaces))
	for i, id := range spaces {
		strs[i] = fmt.Sprintf("%d", id)
	}
	fmt.Fprintf(w, "desktops=%s\n", strings.Join(strs, ","))
	return nil
}

// MonitorForDesktop writes the display id hosting spaceID; an alias of
// FocusedMonitor kept distinct since the two query ops are documented
// separately.
func (s *Surface) MonitorForDesktop(w io.Writer, spaceID uint32) error {
	return s.FocusedMonitor(w, spaceID)
}
