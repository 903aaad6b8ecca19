package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srb321/drivewise-reports/internal/config"
	"github.com/srb321/drivewise-reports/internal/dutylog"
	"github.com/srb321/drivewise-reports/internal/export"
	"github.com/srb321/drivewise-reports/internal/hos"
	"github.com/srb321/drivewise-reports/internal/logging"
	"github.com/srb321/drivewise-reports/internal/logparse"
	"github.com/srb321/drivewise-reports/internal/pipeline"
	"github.com/srb321/drivewise-reports/internal/textutil"
)

var errCriticalViolations = errors.New("critical violations detected")

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var workbookPath string
	var exportWorkbook bool
	var workers int
	var failOnCritical bool

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze duty logs and report violations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger := ctx.commandLogger()
			engine := hos.New(rulesetFromConfig(cfg), hos.NewUUIDSource(), logger)
			parseWorkers := cfg.Pipeline.ParseWorkers
			if workers > 0 {
				parseWorkers = workers
			}
			pipe := pipeline.New(nil, logparse.New(logger), engine, parseWorkers, logger)

			result, err := pipe.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, failure := range result.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", failure.Source, failure.Err)
			}

			report := result.Report
			if jsonOutput {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				writeReport(cmd.OutOrStdout(), &report, shouldColorize(cmd.OutOrStdout()))
			}

			target := strings.TrimSpace(workbookPath)
			if target == "" && exportWorkbook {
				target = filepath.Join(cfg.Paths.ReportDir, workbookFileName(cfg, &report))
			}
			if target != "" {
				if dir := filepath.Dir(target); dir != "" && dir != "." {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return fmt.Errorf("create report directory %q: %w", dir, err)
					}
				}
				if err := export.WriteFile(report, target); err != nil {
					return fmt.Errorf("write workbook: %w", err)
				}
				logger.Info("workbook written", logging.String(logging.FieldPath, target))
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote workbook to %s\n", target)
			}

			if failOnCritical {
				if critical := report.CriticalCount(); critical > 0 {
					return fmt.Errorf("%w: %d", errCriticalViolations, critical)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full report as JSON")
	cmd.Flags().StringVar(&workbookPath, "xlsx", "", "Write the report workbook to this path")
	cmd.Flags().BoolVar(&exportWorkbook, "export", false, "Write the report workbook into the configured report directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parse worker count (0 uses the configured value)")
	cmd.Flags().BoolVar(&failOnCritical, "fail-on-critical", false, "Exit with status 2 when critical violations are found")
	return cmd
}

// workbookFileName stamps the configured workbook name with the report's
// date range. Log dates keep their source spelling, so slashes and other
// separators are sanitized out of the result.
func workbookFileName(cfg *config.Config, report *hos.AnalysisReport) string {
	name := cfg.Export.WorkbookName
	dateRange := report.Summary.DateRange
	if dateRange.Start == dutylog.UnknownDate {
		return textutil.SanitizeFileName(name)
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return textutil.SanitizeFileName(fmt.Sprintf("%s_%s_%s%s", stem, dateRange.Start, dateRange.End, ext))
}

func rulesetFromConfig(cfg *config.Config) hos.Ruleset {
	return hos.Ruleset{
		OdometerCriticalDelta:     cfg.Analysis.OdometerCriticalDelta,
		StationaryMinimumMinutes:  cfg.Analysis.StationaryMinimumMinutes,
		USADrivingLimitMinutes:    cfg.Analysis.USADrivingLimitMinutes,
		CanadaDrivingLimitMinutes: cfg.Analysis.CanadaDrivingLimitMinutes,
	}
}
