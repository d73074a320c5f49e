package config

// RawConfig mirrors the on-disk YAML schema. Every field is a pointer
// so the loader can tell "absent, use the default" from "explicitly
// set to the zero value".
type RawConfig struct {
	BSPSplitRatio        *float32 `yaml:"bsp_split_ratio"`
	BSPInsertionPoint    *uint32  `yaml:"bsp_insertion_point"`
	WindowFocusCycle     *string  `yaml:"window_focus_cycle"`
	MonitorFocusCycle    *bool    `yaml:"monitor_focus_cycle"`
	MouseFollowsFocus    *bool    `yaml:"mouse_follows_focus"`
	WindowFloatTopmost   *bool    `yaml:"window_float_topmost"`
	PaddingStepSize      *float32 `yaml:"padding_step_size"`
	GapStepSize          *float32 `yaml:"gap_step_size"`
	PreselectBorderColor *string  `yaml:"preselect_border_color"` // "0xAARRGGBB"
	PreselectBorderWidth *int     `yaml:"preselect_border_width"`
}
