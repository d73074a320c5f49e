// Package config resolves the core's configuration variables from a
// YAML file plus built-in defaults into an immutable snapshot. The
// daemon loads it once at startup and hands it to internal/command's
// Dispatcher; it is not re-read per command.
package config

// FocusCycle is the window_focus_cycle variable's value space.
type FocusCycle string

const (
	FocusCycleAll     FocusCycle = "all"
	FocusCycleMonitor FocusCycle = "monitor"
	FocusCycleNone    FocusCycle = "none"
)

// Config is the resolved, immutable set of configuration variables the
// core reads by name. Never mutated by the core; only the loader
// produces one.
type Config struct {
	BSPSplitRatio        float32
	BSPInsertionPoint    uint32
	WindowFocusCycle     FocusCycle
	MonitorFocusCycle    bool
	MouseFollowsFocus    bool
	WindowFloatTopmost   bool
	PaddingStepSize      float32
	GapStepSize          float32
	PreselectBorderColor uint32 // 0xAARRGGBB
	PreselectBorderWidth int
}

// Defaults returns the built-in configuration, used when no file is
// present and as the base every loaded file overrides.
func Defaults() Config {
	return Config{
		BSPSplitRatio:        0.5,
		BSPInsertionPoint:    0,
		WindowFocusCycle:     FocusCycleAll,
		MonitorFocusCycle:    false,
		MouseFollowsFocus:    false,
		WindowFloatTopmost:   true,
		PaddingStepSize:      10,
		GapStepSize:          5,
		PreselectBorderColor: 0xffd75f5f,
		PreselectBorderWidth: 3,
	}
}
