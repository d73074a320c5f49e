package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
)

// Execute parses one command-channel line ("verb arg arg...") and runs
// the corresponding handler against the currently active space. This
// is the single place verb strings get translated into typed calls —
// every handler above takes typed arguments (NavTarget, bsptree.Split,
// ...), never a raw string, so dispatch logic never leaks past this
// boundary.
func (d *Dispatcher) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	verb, args := fields[0], fields[1:]

	spaceID, _, err := d.Access.ActiveSpace()
	if err != nil {
		d.warnf("execute %q: resolve active space: %v", verb, err)
		return nil
	}

	switch verb {
	case "focus":
		return d.execNav(spaceID, args, d.Focus)
	case "swap":
		return d.execNav(spaceID, args, d.Swap)
	case "warp":
		return d.execNav(spaceID, args, d.Warp)
	case "ratio":
		return d.execRatio(spaceID, args)
	case "zoom-fullscreen":
		return requireNoArgs(args, func() error { return d.ToggleFullscreenZoom(spaceID) })
	case "zoom-parent":
		return requireNoArgs(args, func() error { return d.ToggleParentZoom(spaceID) })
	case "preselect":
		return d.execPreselect(spaceID, args)
	case "rotate":
		return d.execRotate(spaceID, args)
	case "mirror":
		return d.execMirror(spaceID, args)
	case "equalize":
		return requireNoArgs(args, func() error { return d.Equalize(spaceID) })
	case "toggle-split":
		return requireNoArgs(args, func() error { return d.ToggleSplit(spaceID) })
	case "toggle-offset":
		return requireNoArgs(args, func() error { return d.ToggleOffset(spaceID) })
	case "padding":
		return d.execStep(spaceID, args, d.AdjustPadding)
	case "gap":
		return d.execStep(spaceID, args, d.AdjustGap)
	case "float":
		return requireNoArgs(args, func() error { return d.ToggleWindowFloat(spaceID) })
	case "sticky":
		return requireNoArgs(args, func() error { return d.ToggleWindowSticky(spaceID) })
	case "send-to-desktop":
		return d.execSendToDesktop(spaceID, args)
	case "grid":
		return d.execGrid(spaceID, args)
	case "serialize":
		return d.execSerialize(spaceID, args, d.Serialize)
	case "deserialize":
		return d.execSerialize(spaceID, args, d.Deserialize)
	default:
		d.warnf("execute: unknown verb %q", verb)
		return nil
	}
}

func requireNoArgs(args []string, fn func() error) error {
	if len(args) != 0 {
		return fmt.Errorf("command takes no arguments, got %v", args)
	}
	return fn()
}

func (d *Dispatcher) execNav(spaceID uint32, args []string, fn func(uint32, NavTarget) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one target argument, got %v", args)
	}
	target, ok := ParseNavTarget(args[0])
	if !ok {
		d.warnf("unrecognized nav target %q", args[0])
		return nil
	}
	return fn(spaceID, target)
}

func (d *Dispatcher) execRatio(spaceID uint32, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected target and step, got %v", args)
	}
	target, ok := ParseNavTarget(args[0])
	if !ok {
		d.warnf("unrecognized nav target %q", args[0])
		return nil
	}
	step, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("malformed ratio step %q: %w", args[1], err)
	}
	return d.AdjustRatio(spaceID, target, float32(step))
}

func (d *Dispatcher) execPreselect(spaceID uint32, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one direction argument, got %v", args)
	}
	if args[0] == "cancel" {
		return d.UseInsertionPoint(spaceID, bsptree.DirNone)
	}
	dir, ok := bsptree.ParseDirection(args[0])
	if !ok {
		d.warnf("unrecognized direction %q", args[0])
		return nil
	}
	return d.UseInsertionPoint(spaceID, dir)
}

func (d *Dispatcher) execRotate(spaceID uint32, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a degree argument, got %v", args)
	}
	degrees, err := strconv.Atoi(args[0])
	if err != nil || (degrees != 90 && degrees != 180 && degrees != 270) {
		return fmt.Errorf("rotate degrees must be 90, 180, or 270, got %q", args[0])
	}
	return d.Rotate(spaceID, degrees)
}

func (d *Dispatcher) execMirror(spaceID uint32, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected an axis argument, got %v", args)
	}
	var axis bsptree.Split
	switch args[0] {
	case "horizontal":
		axis = bsptree.Horizontal
	case "vertical":
		axis = bsptree.Vertical
	default:
		return fmt.Errorf("mirror axis must be horizontal or vertical, got %q", args[0])
	}
	return d.Mirror(spaceID, axis)
}

func (d *Dispatcher) execStep(spaceID uint32, args []string, fn func(uint32, bool) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected increase or decrease, got %v", args)
	}
	switch args[0] {
	case "increase":
		return fn(spaceID, true)
	case "decrease":
		return fn(spaceID, false)
	default:
		return fmt.Errorf("expected increase or decrease, got %q", args[0])
	}
}

func (d *Dispatcher) execSendToDesktop(spaceID uint32, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one destination desktop argument, got %v", args)
	}
	dest, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("malformed destination desktop %q: %w", args[0], err)
	}
	return d.SendWindowToDesktop(spaceID, uint32(dest))
}

func (d *Dispatcher) execGrid(spaceID uint32, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one rows:cols:x:y:w:h argument, got %v", args)
	}
	return d.GridLayout(spaceID, args[0])
}

func (d *Dispatcher) execSerialize(spaceID uint32, args []string, fn func(uint32, string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one path argument, got %v", args)
	}
	return fn(spaceID, args[0])
}
