package config

import (
	"fmt"
	"io"
	"sort"
)

// Explain writes one line per configuration variable to w, showing its
// resolved value and whether it came from the file or the built-in
// default. Used by the CLI's "config explain" subcommand.
func Explain(w io.Writer, res *LoadResult) {
	names := make([]string, 0, len(res.Sources))
	for n := range res.Sources {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		fmt.Fprintf(w, "%-24s %-10s %v\n", n, res.Sources[n], valueOf(res.Config, n))
	}
}

func valueOf(cfg Config, name string) any {
	switch name {
	case "bsp_split_ratio":
		return cfg.BSPSplitRatio
	case "bsp_insertion_point":
		return cfg.BSPInsertionPoint
	case "window_focus_cycle":
		return cfg.WindowFocusCycle
	case "monitor_focus_cycle":
		return cfg.MonitorFocusCycle
	case "mouse_follows_focus":
		return cfg.MouseFollowsFocus
	case "window_float_topmost":
		return cfg.WindowFloatTopmost
	case "padding_step_size":
		return cfg.PaddingStepSize
	case "gap_step_size":
		return cfg.GapStepSize
	case "preselect_border_color":
		return fmt.Sprintf("0x%08X", cfg.PreselectBorderColor)
	case "preselect_border_width":
		return cfg.PreselectBorderWidth
	default:
		return nil
	}
}
