package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srb321/drivewise-reports/internal/dutylog"
	"github.com/srb321/drivewise-reports/internal/extraction"
	"github.com/srb321/drivewise-reports/internal/logparse"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse one duty log and show what was recovered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			registry := extraction.NewRegistry()
			document, err := registry.Extract(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("extract %s: %w", args[0], err)
			}
			parsed := logparse.New(ctx.commandLogger()).Parse(document.Name, document.Text)

			if jsonOutput {
				return writeJSON(cmd, parsed)
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Document", colorize) {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintln(stdout, renderSummaryLine("Source", parsed.SourceName))
			fmt.Fprintln(stdout, renderSummaryLine("Driver", parsed.DriverName))
			fmt.Fprintln(stdout, renderSummaryLine("Date", parsed.LogDate))
			fmt.Fprintln(stdout, renderSummaryLine("Country", string(parsed.Country)))
			fmt.Fprintln(stdout, renderSummaryLine("Format", string(parsed.Format)))
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Entries", colorize) {
				fmt.Fprintln(stdout, line)
			}
			if len(parsed.Entries) == 0 {
				fmt.Fprintln(stdout, "No entries recovered")
			} else {
				fmt.Fprintln(stdout, renderTable(entryHeaders, buildEntryRows(parsed.Entries), entryAligns))
			}

			if len(parsed.UnidentifiedEvents) > 0 {
				fmt.Fprintln(stdout)
				for _, line := range renderSectionHeader("Unidentified Events", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderTable(entryHeaders, buildEntryRows(parsed.UnidentifiedEvents), entryAligns))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the parsed log as JSON")
	return cmd
}

var entryHeaders = []string{"Date", "Time", "Status", "Duration", "Minutes", "Odometer", "Location", "Annotations"}

var entryAligns = []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft}

func buildEntryRows(entries []dutylog.LogEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		odometer := ""
		if reading, ok := entry.OdometerReading(); ok {
			odometer = strconv.FormatFloat(reading, 'f', -1, 64)
		}
		rows = append(rows, []string{
			entry.Date,
			entry.Time,
			entry.Status,
			entry.Duration,
			strconv.Itoa(entry.DurationMinutes),
			odometer,
			entry.Location,
			strings.Join(entry.Annotations(), " | "),
		})
	}
	return rows
}
