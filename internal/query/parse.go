package query

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Execute parses one query-channel line ("op arg...") and writes its
// response to w. Mirrors command.Dispatcher.Execute's verb+args
// boundary, kept in its own package since queries answer against the
// active space/window rather than mutating it.
func (s *Surface) Execute(w io.Writer, line string, activeSpaceID uint32) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "focused-window":
		return s.FocusedWindow(w, activeSpaceID)
	case "window":
		return s.execWindowDetails(w, args)
	case "focused-desktop":
		return s.FocusedDesktop(w, activeSpaceID)
	case "windows":
		return s.WindowsForActiveSpace(w, activeSpaceID)
	case "focused-monitor":
		return s.FocusedMonitor(w, activeSpaceID)
	case "monitor-count":
		return s.MonitorCount(w)
	case "desktops-for-monitor":
		return s.execDesktopsForMonitor(w, args)
	case "monitor-for-desktop":
		return s.execMonitorForDesktop(w, args)
	default:
		return fmt.Errorf("unknown query op %q", verb)
	}
}

func (s *Surface) execWindowDetails(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one window id argument, got %v", args)
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("malformed window id %q: %w", args[0], err)
	}
	return s.WindowDetails(w, uint32(id))
}

func (s *Surface) execDesktopsForMonitor(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one monitor id argument, got %v", args)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("malformed monitor id %q: %w", args[0], err)
	}
	return s.DesktopsForMonitor(w, id)
}

func (s *Surface) execMonitorForDesktop(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one desktop id argument, got %v", args)
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("malformed desktop id %q: %w", args[0], err)
	}
	return s.MonitorForDesktop(w, uint32(id))
}
