package command

import (
	"fmt"
	"log"
	"testing"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/config"
	"github.com/trws/chunkwm-tiling/internal/region"
	"github.com/trws/chunkwm-tiling/internal/search"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// fakeAccess is an in-memory Accessibility double: one space, a fixed
// display, and a map of window rectangles the test populates directly.
type fakeAccess struct {
	spaceID     uint32
	displayID   int
	bounds      region.Rect
	active      uint32
	rects       map[uint32]region.Rect
	moved       map[uint32]region.IntRect
	focused     uint32
	sentTo      map[uint32]uint32
	warpedTo    region.Point
	cursorAt    region.Point
	closeCalled uint32
}

func newFakeAccess() *fakeAccess {
	return &fakeAccess{
		spaceID:   1,
		displayID: 0,
		bounds:    region.Rect{X: 0, Y: 0, Width: 1000, Height: 1000},
		rects:     make(map[uint32]region.Rect),
		moved:     make(map[uint32]region.IntRect),
		sentTo:    make(map[uint32]uint32),
		// Off in the corner so centerMouseInRegion's "already inside
		// the destination" skip never fires unless a test sets it.
		cursorAt: region.Point{X: -1000, Y: -1000},
	}
}

func (f *fakeAccess) MoveResizeWindow(windowID uint32, r region.IntRect) error {
	f.moved[windowID] = r
	return nil
}
func (f *fakeAccess) ActiveSpace() (uint32, region.Rect, error) { return f.spaceID, f.bounds, nil }
func (f *fakeAccess) ActiveWindowID() (uint32, error)           { return f.active, nil }
func (f *fakeAccess) WindowRect(windowID uint32) (region.Rect, error) {
	return f.rects[windowID], nil
}
func (f *fakeAccess) VisibleWindows(spaceID uint32) ([]search.Candidate, error) {
	out := make([]search.Candidate, 0, len(f.rects))
	for id, r := range f.rects {
		out = append(out, search.Candidate{WindowID: id, Rect: r})
	}
	return out, nil
}
func (f *fakeAccess) FocusWindow(windowID uint32) error { f.focused = windowID; return nil }
func (f *fakeAccess) WarpCursor(p region.Point) error   { f.warpedTo = p; return nil }
func (f *fakeAccess) CursorPosition() (region.Point, error) { return f.cursorAt, nil }
func (f *fakeAccess) CloseWindow(windowID uint32) error { f.closeCalled = windowID; return nil }
func (f *fakeAccess) DisplayBounds(spaceID uint32) (region.Rect, error) { return f.bounds, nil }
func (f *fakeAccess) DisplayForSpace(spaceID uint32) (int, error)       { return f.displayID, nil }
func (f *fakeAccess) SpacesOnDisplay(displayID int) ([]uint32, error)   { return []uint32{f.spaceID}, nil }
func (f *fakeAccess) DisplayCount() (int, error)                        { return 1, nil }
func (f *fakeAccess) SendWindowToDesktop(windowID uint32, desktopID uint32) error {
	f.sentTo[windowID] = desktopID
	return nil
}
func (f *fakeAccess) WindowInfo(windowID uint32) (WindowInfo, error) {
	return WindowInfo{Owner: "testapp", Name: fmt.Sprintf("window-%d", windowID), Movable: true, Resizable: true}, nil
}
func (f *fakeAccess) IsWindowValid(windowID uint32) bool {
	_, ok := f.rects[windowID]
	return ok
}

type fakeDock struct {
	moves   []uint32
	levels  map[uint32]int
	sticky  map[uint32]bool
}

func newFakeDock() *fakeDock {
	return &fakeDock{levels: make(map[uint32]int), sticky: make(map[uint32]bool)}
}
func (d *fakeDock) NotifyWindowMove(windowID uint32, r region.IntRect) error {
	d.moves = append(d.moves, windowID)
	return nil
}
func (d *fakeDock) NotifyWindowLevel(windowID uint32, level int) error {
	d.levels[windowID] = level
	return nil
}
func (d *fakeDock) NotifyWindowSticky(windowID uint32, sticky bool) error {
	d.sticky[windowID] = sticky
	return nil
}

func newTestDispatcher(access *fakeAccess, reg *workspace.Registry) *Dispatcher {
	return New(access, newFakeDock(), reg, config.Defaults(), log.New(testWriter{}, "", 0))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

// buildThreeLeafSpace builds a space with a root split vertically into
// a left leaf (window 1) and a right subtree split horizontally into
// window 2 (top) and window 3 (bottom), with plausible rectangles
// registered on access so geometric search has something to chew on.
func buildThreeLeafSpace(t *testing.T, access *fakeAccess) (*workspace.Registry, *workspace.Space) {
	t.Helper()
	reg := workspace.NewRegistry()
	space, release := reg.Acquire(1)
	defer release()

	root := space.Tree.NewRoot(1)
	right := space.Tree.SplitLeaf(root, 2, false, bsptree.Vertical, 0.5)
	space.Tree.SplitLeaf(right, 3, false, bsptree.Horizontal, 0.5)

	space.Tree.Node(root).Region = region.Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	left := space.Tree.Node(root).Left
	space.Tree.Node(left).Region = region.Rect{X: 0, Y: 0, Width: 500, Height: 1000}
	rightNode := space.Tree.Node(root).Right
	rightUpper := space.Tree.Node(rightNode).Left
	rightLower := space.Tree.Node(rightNode).Right
	space.Tree.Node(rightUpper).Region = region.Rect{X: 500, Y: 0, Width: 500, Height: 500}
	space.Tree.Node(rightLower).Region = region.Rect{X: 500, Y: 500, Width: 500, Height: 500}

	access.rects[1] = space.Tree.Node(left).Region
	access.rects[2] = space.Tree.Node(rightUpper).Region
	access.rects[3] = space.Tree.Node(rightLower).Region
	access.active = 1

	return reg, space
}

func TestFocusUndirectedNextVisitsNextLeaf(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	target, ok := ParseNavTarget("next")
	if !ok {
		t.Fatal("expected 'next' to parse as a nav target")
	}
	if err := d.Focus(1, target); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if access.focused != 2 {
		t.Fatalf("expected focus to move to window 2, got %d", access.focused)
	}
}

func TestFocusDirectionalFindsGeometricNeighbor(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	target, ok := ParseNavTarget("east")
	if !ok {
		t.Fatal("expected 'east' to parse")
	}
	if err := d.Focus(1, target); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if access.focused != 2 && access.focused != 3 {
		t.Fatalf("expected focus to move east to window 2 or 3, got %d", access.focused)
	}
}

func TestSwapExchangesWindowIdsNotRegions(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	target, _ := ParseNavTarget("next")
	if err := d.Swap(1, target); err != nil {
		t.Fatalf("Swap: %v", err)
	}

	root := space.Tree.Root()
	left := space.Tree.Node(root).Left
	if space.Tree.Node(left).WindowID != 2 {
		t.Fatalf("expected window 2 swapped into the left leaf, got %d", space.Tree.Node(left).WindowID)
	}
}

func TestSwapWarpsCursorWhenMouseFollowsFocusIsSet(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	cfg := config.Defaults()
	cfg.MouseFollowsFocus = true
	d := New(access, newFakeDock(), reg, cfg, log.New(testWriter{}, "", 0))

	target, _ := ParseNavTarget("next")
	if err := d.Swap(1, target); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if access.warpedTo == (region.Point{}) {
		t.Fatal("expected Swap to warp the cursor when mouse_follows_focus is set")
	}
}

func TestSwapSkipsWarpWhenCursorAlreadyInDestination(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	cfg := config.Defaults()
	cfg.MouseFollowsFocus = true
	d := New(access, newFakeDock(), reg, cfg, log.New(testWriter{}, "", 0))

	target, _ := ParseNavTarget("next")
	rightNode := space.Tree.Node(space.Tree.Root()).Right
	destination := space.Tree.Node(rightNode).Left // rightUpper, window 2 — "next" from window 1
	access.cursorAt = space.Tree.Node(destination).Region.Center()

	if err := d.Swap(1, target); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if access.warpedTo != (region.Point{}) {
		t.Fatal("expected Swap not to warp the cursor when it's already in the destination region")
	}
}

func TestToggleFullscreenZoomThenUnzoom(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.ToggleFullscreenZoom(1); err != nil {
		t.Fatalf("ToggleFullscreenZoom: %v", err)
	}
	if space.Zoom() == bsptree.NoNode {
		t.Fatal("expected a zoomed node after toggling on")
	}
	if err := d.ToggleFullscreenZoom(1); err != nil {
		t.Fatalf("ToggleFullscreenZoom off: %v", err)
	}
	if space.Zoom() != bsptree.NoNode {
		t.Fatal("expected zoom cleared after toggling off")
	}
}

func TestToggleWindowFloatRemovesFromTree(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.ToggleWindowFloat(1); err != nil {
		t.Fatalf("ToggleWindowFloat: %v", err)
	}
	if _, floating := space.FloatWindows[1]; !floating {
		t.Fatal("expected window 1 in the float set")
	}
	if node := space.Tree.FindByWindowID(space.Tree.Root(), 1); node != bsptree.NoNode {
		t.Fatal("expected window 1 removed from the tree")
	}
}

func TestToggleWindowStickyForcesFloatOnlyWhenEnteringSticky(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.ToggleWindowSticky(1); err != nil {
		t.Fatalf("ToggleWindowSticky: %v", err)
	}
	if _, floating := space.FloatWindows[1]; !floating {
		t.Fatal("expected sticky to force float on")
	}

	if err := d.ToggleWindowSticky(1); err != nil {
		t.Fatalf("ToggleWindowSticky off: %v", err)
	}
	if _, stillFloating := space.FloatWindows[1]; !stillFloating {
		t.Fatal("expected un-stickying to leave float state untouched")
	}
}

func TestAdjustRatioRefusesOutOfRange(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	root := space.Tree.Root()
	before := space.Tree.Node(root).Ratio

	target, _ := ParseNavTarget("next")
	if err := d.AdjustRatio(1, target, 5.0); err != nil {
		t.Fatalf("AdjustRatio: %v", err)
	}
	if space.Tree.Node(root).Ratio != before {
		t.Fatalf("expected out-of-range ratio step to be refused, ratio changed to %v", space.Tree.Node(root).Ratio)
	}
}

func TestGridLayoutRefusesOnTiledWindow(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.GridLayout(1, "2:2:0:0:1:1"); err != nil {
		t.Fatalf("GridLayout: %v", err)
	}
	if _, moved := access.moved[1]; moved {
		t.Fatal("expected a tiled window to refuse grid placement")
	}
}

func TestGridLayoutPlacesFloatingWindow(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)
	space.FloatWindows[1] = struct{}{}

	if err := d.GridLayout(1, "2:2:0:0:1:1"); err != nil {
		t.Fatalf("GridLayout: %v", err)
	}
	got, moved := access.moved[1]
	if !moved {
		t.Fatal("expected the floating window to be placed")
	}
	want := region.Rect{X: 0, Y: 0, Width: 500, Height: 500}.Round()
	if got != want {
		t.Fatalf("expected rect %+v, got %+v", want, got)
	}
}

func TestSendWindowToDesktopRefusesSameDesktop(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.SendWindowToDesktop(1, 1); err != nil {
		t.Fatalf("SendWindowToDesktop: %v", err)
	}
	if len(access.sentTo) != 0 {
		t.Fatal("expected same-desktop send to be a no-op")
	}
}

func TestSendWindowToDesktopUntilesAndSends(t *testing.T) {
	access := newFakeAccess()
	reg, space := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.SendWindowToDesktop(1, 2); err != nil {
		t.Fatalf("SendWindowToDesktop: %v", err)
	}
	if access.sentTo[1] != 2 {
		t.Fatalf("expected window 1 sent to desktop 2, got %v", access.sentTo)
	}
	if node := space.Tree.FindByWindowID(space.Tree.Root(), 1); node != bsptree.NoNode {
		t.Fatal("expected window 1 untiled from the source space")
	}
}

func TestExecuteDispatchesFocusVerb(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.Execute("focus next"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if access.focused != 2 {
		t.Fatalf("expected focus next to move to window 2, got %d", access.focused)
	}
}

func TestExecuteRejectsUnknownVerb(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.Execute("bogus-verb"); err != nil {
		t.Fatalf("expected unknown verb to be a logged no-op, got error: %v", err)
	}
}

func TestExecuteRejectsMalformedRotateDegrees(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)

	if err := d.Execute("rotate 45"); err == nil {
		t.Fatal("expected rotate with an invalid degree to return an error")
	}
}

func TestSerializeDeserializeRoundTripThroughFakeFilesystem(t *testing.T) {
	access := newFakeAccess()
	reg, _ := buildThreeLeafSpace(t, access)
	d := newTestDispatcher(access, reg)
	fakeFS := newFakeFilesystem()
	d.FS = fakeFS

	if err := d.Serialize(1, "/tmp/layout.yaml"); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if _, ok := fakeFS.files["/tmp/layout.yaml"]; !ok {
		t.Fatal("expected Serialize to write to the filesystem")
	}

	if err := d.Deserialize(2, "/tmp/layout.yaml"); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	restored, release := reg.Acquire(2)
	defer release()
	if restored.Tree.Empty() {
		t.Fatal("expected the deserialized space to have a non-empty tree")
	}
}

type fakeFilesystem struct {
	files map[string][]byte
}

func newFakeFilesystem() *fakeFilesystem {
	return &fakeFilesystem{files: make(map[string][]byte)}
}
func (f *fakeFilesystem) WriteFile(path string, data []byte) error {
	f.files[path] = append([]byte(nil), data...)
	return nil
}
func (f *fakeFilesystem) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, &fakeFileNotFound{path}
	}
	return data, nil
}

type fakeFileNotFound struct{ path string }

func (e *fakeFileNotFound) Error() string { return "no such file: " + e.path }
