package query

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/command"
	"github.com/trws/chunkwm-tiling/internal/config"
	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/search"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

type fakeAccess struct {
	active  uint32
	valid   map[uint32]bool
	display int
	spaces  []uint32
	count   int
}

func (f *fakeAccess) MoveResizeWindow(uint32, region.IntRect) error       { return nil }
func (f *fakeAccess) ActiveSpace() (uint32, region.Rect, error)           { return 1, region.Rect{}, nil }
func (f *fakeAccess) ActiveWindowID() (uint32, error)                     { return f.active, nil }
func (f *fakeAccess) WindowRect(uint32) (region.Rect, error)              { return region.Rect{}, nil }
func (f *fakeAccess) VisibleWindows(uint32) ([]search.Candidate, error)   { return nil, nil }
func (f *fakeAccess) FocusWindow(uint32) error                           { return nil }
func (f *fakeAccess) WarpCursor(region.Point) error                      { return nil }
func (f *fakeAccess) CursorPosition() (region.Point, error)              { return region.Point{}, nil }
func (f *fakeAccess) CloseWindow(uint32) error                           { return nil }
func (f *fakeAccess) DisplayBounds(uint32) (region.Rect, error)          { return region.Rect{}, nil }
func (f *fakeAccess) DisplayForSpace(uint32) (int, error)                { return f.display, nil }
func (f *fakeAccess) SpacesOnDisplay(int) ([]uint32, error)              { return f.spaces, nil }
func (f *fakeAccess) DisplayCount() (int, error)                        { return f.count, nil }
func (f *fakeAccess) SendWindowToDesktop(uint32, uint32) error          { return nil }
func (f *fakeAccess) WindowInfo(windowID uint32) (command.WindowInfo, error) {
	return command.WindowInfo{Owner: "app", Name: fmt.Sprintf("win-%d", windowID), Movable: true, Resizable: true}, nil
}
func (f *fakeAccess) IsWindowValid(windowID uint32) bool { return f.valid[windowID] }

type fakeDock struct{}

func (fakeDock) NotifyWindowMove(uint32, region.IntRect) error { return nil }
func (fakeDock) NotifyWindowLevel(uint32, int) error           { return nil }
func (fakeDock) NotifyWindowSticky(uint32, bool) error         { return nil }

func newSurface(t *testing.T, access *fakeAccess) (*Surface, *workspace.Registry) {
	t.Helper()
	reg := workspace.NewRegistry()
	d := command.New(access, fakeDock{}, reg, config.Defaults(), log.New(&bytes.Buffer{}, "", 0))
	return New(d), reg
}

func TestFocusedWindowReportsOwnerAndTag(t *testing.T) {
	access := &fakeAccess{active: 7, valid: map[uint32]bool{}}
	s, _ := newSurface(t, access)

	var buf bytes.Buffer
	if err := s.FocusedWindow(&buf, 3); err != nil {
		t.Fatalf("FocusedWindow: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "id=7") || !strings.Contains(got, "tag=3") || !strings.Contains(got, "float=false") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestWindowsForActiveSpaceEmptyReproducesLiteralString(t *testing.T) {
	access := &fakeAccess{valid: map[uint32]bool{}}
	s, _ := newSurface(t, access)

	var buf bytes.Buffer
	if err := s.WindowsForActiveSpace(&buf, 1); err != nil {
		t.Fatalf("WindowsForActiveSpace: %v", err)
	}
	if buf.String() != "desktop is empty..\n" {
		t.Fatalf("expected the literal empty-desktop string, got %q", buf.String())
	}
}

func TestWindowsForActiveSpaceMarksInvalidWindows(t *testing.T) {
	access := &fakeAccess{valid: map[uint32]bool{1: true}}
	s, reg := newSurface(t, access)

	space, release := reg.Acquire(1)
	space.Tree.NewRoot(1)
	right := space.Tree.SplitLeaf(space.Tree.Root(), 2, false, bsptree.Vertical, 0.5)
	_ = right
	release()

	var buf bytes.Buffer
	if err := s.WindowsForActiveSpace(&buf, 1); err != nil {
		t.Fatalf("WindowsForActiveSpace: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "1\n") {
		t.Fatalf("expected valid window 1 with no suffix, got %q", got)
	}
	if !strings.Contains(got, "2 (invalid)\n") {
		t.Fatalf("expected invalid window 2 marked, got %q", got)
	}
}

func TestExecuteDispatchesMonitorCount(t *testing.T) {
	access := &fakeAccess{count: 2, valid: map[uint32]bool{}}
	s, _ := newSurface(t, access)

	var buf bytes.Buffer
	if err := s.Execute(&buf, "monitor-count", 1); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if buf.String() != "count=2\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestExecuteRejectsUnknownOp(t *testing.T) {
	access := &fakeAccess{valid: map[uint32]bool{}}
	s, _ := newSurface(t, access)

	var buf bytes.Buffer
	if err := s.Execute(&buf, "bogus", 1); err == nil {
		t.Fatal("expected an error for an unknown query op")
	}
}
