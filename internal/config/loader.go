package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceKind names where a resolved variable's value came from.
type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// LoadResult pairs the resolved Config with per-variable provenance,
// used by Explain.
type LoadResult struct {
	Config  Config
	Sources map[string]SourceKind
	File    string
}

// DefaultConfigPath returns ~/.config/chunkwm-tiling/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "chunkwm-tiling", "config.yaml"), nil
}

// Load reads the merged configuration from the standard location.
func Load() (Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	res, err := LoadFromPath(path)
	if err != nil {
		return Config{}, err
	}
	return res.Config, nil
}

// LoadFromPath reads and merges configuration from path over the
// built-in defaults. A missing file is not an error: the defaults
// alone are returned.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := Defaults()
	sources := defaultSources()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadResult{Config: cfg, Sources: sources}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw RawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := applyRaw(&cfg, sources, raw); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &LoadResult{Config: cfg, Sources: sources, File: path}, nil
}

func defaultSources() map[string]SourceKind {
	names := []string{
		"bsp_split_ratio", "bsp_insertion_point", "window_focus_cycle",
		"monitor_focus_cycle", "mouse_follows_focus", "window_float_topmost",
		"padding_step_size", "gap_step_size", "preselect_border_color",
		"preselect_border_width",
	}
	m := make(map[string]SourceKind, len(names))
	for _, n := range names {
		m[n] = SourceDefault
	}
	return m
}

func applyRaw(cfg *Config, sources map[string]SourceKind, raw RawConfig) error {
	if raw.BSPSplitRatio != nil {
		if *raw.BSPSplitRatio < 0.1 || *raw.BSPSplitRatio > 0.9 {
			return fmt.Errorf("bsp_split_ratio must be in [0.1, 0.9], got %v", *raw.BSPSplitRatio)
		}
		cfg.BSPSplitRatio = *raw.BSPSplitRatio
		sources["bsp_split_ratio"] = SourceFile
	}
	if raw.BSPInsertionPoint != nil {
		cfg.BSPInsertionPoint = *raw.BSPInsertionPoint
		sources["bsp_insertion_point"] = SourceFile
	}
	if raw.WindowFocusCycle != nil {
		switch FocusCycle(*raw.WindowFocusCycle) {
		case FocusCycleAll, FocusCycleMonitor, FocusCycleNone:
			cfg.WindowFocusCycle = FocusCycle(*raw.WindowFocusCycle)
			sources["window_focus_cycle"] = SourceFile
		default:
			return fmt.Errorf("window_focus_cycle must be one of all|monitor|none, got %q", *raw.WindowFocusCycle)
		}
	}
	if raw.MonitorFocusCycle != nil {
		cfg.MonitorFocusCycle = *raw.MonitorFocusCycle
		sources["monitor_focus_cycle"] = SourceFile
	}
	if raw.MouseFollowsFocus != nil {
		cfg.MouseFollowsFocus = *raw.MouseFollowsFocus
		sources["mouse_follows_focus"] = SourceFile
	}
	if raw.WindowFloatTopmost != nil {
		cfg.WindowFloatTopmost = *raw.WindowFloatTopmost
		sources["window_float_topmost"] = SourceFile
	}
	if raw.PaddingStepSize != nil {
		if *raw.PaddingStepSize < 0 {
			return fmt.Errorf("padding_step_size must be >= 0, got %v", *raw.PaddingStepSize)
		}
		cfg.PaddingStepSize = *raw.PaddingStepSize
		sources["padding_step_size"] = SourceFile
	}
	if raw.GapStepSize != nil {
		if *raw.GapStepSize < 0 {
			return fmt.Errorf("gap_step_size must be >= 0, got %v", *raw.GapStepSize)
		}
		cfg.GapStepSize = *raw.GapStepSize
		sources["gap_step_size"] = SourceFile
	}
	if raw.PreselectBorderColor != nil {
		color, err := parseARGBHex(*raw.PreselectBorderColor)
		if err != nil {
			return fmt.Errorf("preselect_border_color: %w", err)
		}
		cfg.PreselectBorderColor = color
		sources["preselect_border_color"] = SourceFile
	}
	if raw.PreselectBorderWidth != nil {
		if *raw.PreselectBorderWidth < 0 {
			return fmt.Errorf("preselect_border_width must be >= 0, got %v", *raw.PreselectBorderWidth)
		}
		cfg.PreselectBorderWidth = *raw.PreselectBorderWidth
		sources["preselect_border_width"] = SourceFile
	}
	return nil
}

func parseARGBHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("expected 0xAARRGGBB, got %q: %w", s, err)
	}
	return uint32(v), nil
}
