package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := validateTarget(&c.Target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			return fmt.Errorf("logging: invalid level: %s", c.Logging.Level)
		}
	}
	return nil
}

func validateSettings(s *Settings) error {
	if s.EdgeMargin != nil {
		m, err := ParseMargin(s.EdgeMargin)
		if err != nil {
			return fmt.Errorf("edgeMargin: %w", err)
		}
		if m.X < 0 || m.Y < 0 {
			return fmt.Errorf("edgeMargin cannot be negative")
		}
	}
	if s.TaskbarMargin != nil {
		m, err := ParseMargin(s.TaskbarMargin)
		if err != nil {
			return fmt.Errorf("taskbarMargin: %w", err)
		}
		if m.X < 0 || m.Y < 0 {
			return fmt.Errorf("taskbarMargin cannot be negative")
		}
	}
	return nil
}

func validateTarget(t *Target) error {
	// The process is matched against the image base name, never a path
	if strings.ContainsAny(t.Process, `\/`) {
		return fmt.Errorf("process must be an image name, not a path: %s", t.Process)
	}
	if strings.TrimSpace(t.Class) != t.Class {
		return fmt.Errorf("class has surrounding whitespace: %q", t.Class)
	}
	return nil
}
