package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateInkscape(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.AssetsDir == "" {
		return errors.New("paths.assets_dir must be set")
	}
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	return nil
}

func (c *Config) validateInkscape() error {
	if c.Inkscape.Binary == "" {
		return errors.New("inkscape.binary must be set")
	}
	if c.Inkscape.TimeoutSeconds < 0 {
		return errors.New("inkscape.timeout_seconds must be >= 0 (0 disables the timeout)")
	}
	if c.Inkscape.Actions == "" {
		return errors.New("inkscape.actions must be set")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.FontFamily == "" {
		return errors.New("render.font_family must be set")
	}
	if c.Render.FontSize <= 0 {
		return errors.New("render.font_size must be positive")
	}
	if c.Render.Fill == "" {
		return errors.New("render.fill must be set")
	}
	if c.Render.Stroke == "" {
		return errors.New("render.stroke must be set")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.Path == "" {
		return errors.New("cache.path must be set when cache.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
