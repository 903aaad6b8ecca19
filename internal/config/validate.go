package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ReportDir) == "" {
		return errors.New("paths.report_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.OdometerCriticalDelta <= 0 {
		return errors.New("analysis.odometer_critical_delta must be positive")
	}
	if c.Analysis.StationaryMinimumMinutes <= 0 {
		return errors.New("analysis.stationary_minimum_minutes must be positive")
	}
	if c.Analysis.USADrivingLimitMinutes <= 0 {
		return errors.New("analysis.usa_driving_limit_minutes must be positive")
	}
	if c.Analysis.CanadaDrivingLimitMinutes <= 0 {
		return errors.New("analysis.canada_driving_limit_minutes must be positive")
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.ParseWorkers < 0 {
		return errors.New("pipeline.parse_workers must be zero or positive")
	}
	return nil
}

func (c *Config) validateExport() error {
	name := strings.TrimSpace(c.Export.WorkbookName)
	if name == "" {
		return errors.New("export.workbook_name must be set")
	}
	if name != filepath.Base(name) {
		return errors.New("export.workbook_name must be a bare file name, not a path")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
