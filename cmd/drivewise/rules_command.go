package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srb321/drivewise-reports/internal/hos"
)

type ruleInfo struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Trigger  string `json:"trigger"`
}

func newRulesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the violation checks and active thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rules := describeRules(rulesetFromConfig(cfg))

			if jsonOutput {
				return writeJSON(cmd, map[string]any{"rules": rules})
			}

			rows := make([][]string, 0, len(rules))
			for _, rule := range rules {
				rows = append(rows, []string{rule.Category, rule.Severity, rule.Trigger})
			}
			table := renderTable([]string{"Category", "Severity", "Trigger"}, rows, []columnAlignment{alignLeft, alignLeft, alignLeft})
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the rule list as JSON")
	return cmd
}

// describeRules summarizes each check in report order with the thresholds
// the engine would actually apply.
func describeRules(rules hos.Ruleset) []ruleInfo {
	return []ruleInfo{
		{
			Category: string(hos.CategoryOdometerJump),
			Severity: "Major/Critical",
			Trigger: fmt.Sprintf("Odometer advances without recorded driving; Critical when the jump exceeds %s",
				formatThreshold(rules.OdometerCriticalDelta)),
		},
		{
			Category: string(hos.CategoryLocationChange),
			Severity: string(hos.SeverityMajor),
			Trigger:  "Location changes between consecutive entries with no driving recorded",
		},
		{
			Category: string(hos.CategoryStationaryDriving),
			Severity: string(hos.SeverityMajor),
			Trigger: fmt.Sprintf("Driving status for %d minutes or more with no odometer movement",
				rules.StationaryMinimumMinutes),
		},
		{
			Category: string(hos.CategoryDrivingHours),
			Severity: string(hos.SeverityCritical),
			Trigger: fmt.Sprintf("Daily driving beyond %d minutes (USA) or %d minutes (Canada)",
				rules.USADrivingLimitMinutes, rules.CanadaDrivingLimitMinutes),
		},
		{
			Category: string(hos.CategoryOdometerMismatch),
			Severity: string(hos.SeverityMajor),
			Trigger:  "Last odometer reading of one day differs from the first reading of the next",
		},
		{
			Category: string(hos.CategoryUnidentifiedDriving),
			Severity: string(hos.SeverityCritical),
			Trigger:  "ELD reported a driving event with no driver assigned",
		},
		{
			Category: string(hos.CategoryAnnotations),
			Severity: string(hos.SeverityMinor),
			Trigger:  "Entry carries notes, remarks, or comments for manual review",
		},
	}
}

func formatThreshold(value float64) string {
	return fmt.Sprintf("%g", value)
}
