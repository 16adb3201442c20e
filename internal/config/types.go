package config

// Config is the root configuration structure
type Config struct {
	Settings Settings      `yaml:"settings" json:"settings"`
	Target   Target        `yaml:"target" json:"target"`
	Logging  LoggingConfig `yaml:"logging" json:"logging"`
}

// Settings contains the placement policy.
// Unset fields fall back to the built-in defaults.
type Settings struct {
	PositionUnderCursor *bool       `yaml:"positionUnderCursor,omitempty" json:"positionUnderCursor,omitempty"`
	EdgeMargin          interface{} `yaml:"edgeMargin,omitempty" json:"edgeMargin,omitempty"` // 20, "20px", [x, y] or {x: N, y: N}
	UseTaskbarMargin    *bool       `yaml:"useDifferentMarginInTaskbarArea,omitempty" json:"useDifferentMarginInTaskbarArea,omitempty"`
	TaskbarMargin       interface{} `yaml:"taskbarMargin,omitempty" json:"taskbarMargin,omitempty"`
}

// Target identifies the windows that get repositioned
type Target struct {
	Process      string `yaml:"process,omitempty" json:"process,omitempty"` // Image name, compared case-insensitively
	Class        string `yaml:"class,omitempty" json:"class,omitempty"`     // Window class, compared exactly
	RequireTitle *bool  `yaml:"requireTitle,omitempty" json:"requireTitle,omitempty"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
	File  string `yaml:"file,omitempty" json:"file,omitempty"`
}
