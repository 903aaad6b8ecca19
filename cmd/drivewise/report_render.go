package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/srb321/drivewise-reports/internal/hos"
	"github.com/srb321/drivewise-reports/internal/textutil"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	summaryLabelWidth = 16
	summaryIndent     = "  "
)

// writeReport renders the human-readable report: a summary block, the
// per-category counts, and one row per violation.
func writeReport(out io.Writer, report *hos.AnalysisReport, colorize bool) {
	for _, line := range renderSectionHeader("Summary", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderSummaryLine("Documents", strconv.Itoa(len(report.ParsedLogs))))
	fmt.Fprintln(out, renderSummaryLine("Entries", strconv.Itoa(report.Summary.TotalEntries)))
	fmt.Fprintln(out, renderSummaryLine("Driving Hours", formatHours(report.Summary.TotalDrivingMinutes)))
	fmt.Fprintln(out, renderSummaryLine("Date Range", formatDateRange(report)))
	fmt.Fprintln(out, renderSummaryLine("Violations", fmt.Sprintf("%d (%d critical)", report.TotalViolations, report.CriticalCount())))
	fmt.Fprintln(out)

	for _, line := range renderSectionHeader("Violations by Category", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderTable([]string{"Category", "Count"}, buildCategoryRows(report), []columnAlignment{alignLeft, alignRight}))

	if report.TotalViolations == 0 {
		fmt.Fprintln(out, "No violations detected")
		return
	}

	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Violations", colorize) {
		fmt.Fprintln(out, line)
	}
	headers := []string{"ID", "Severity", "Category", "Driver", "Date", "Time", "Description"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}
	fmt.Fprintln(out, renderTable(headers, buildViolationRows(report.Violations, colorize), aligns))
}

func buildCategoryRows(report *hos.AnalysisReport) [][]string {
	categories := hos.Categories()
	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, []string{string(category), strconv.Itoa(report.ViolationsByCategory[category])})
	}
	return rows
}

func buildViolationRows(violations []hos.Violation, colorize bool) [][]string {
	rows := make([][]string, 0, len(violations))
	for _, violation := range violations {
		rows = append(rows, []string{
			violation.ID,
			renderSeverity(violation.Severity, colorize),
			string(violation.Category),
			violation.Driver,
			violation.Date,
			violation.Time,
			violation.Description,
		})
	}
	return rows
}

func renderSummaryLine(label, value string) string {
	return fmt.Sprintf("%s%-*s %s", summaryIndent, summaryLabelWidth, label+":", value)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func renderSeverity(severity hos.Severity, colorize bool) string {
	if colorize {
		if color := severityColor(severity); color != "" {
			return color + string(severity) + ansiReset
		}
	}
	return string(severity)
}

func severityColor(severity hos.Severity) string {
	switch severity {
	case hos.SeverityCritical:
		return ansiRed
	case hos.SeverityMajor:
		return ansiYellow
	case hos.SeverityMinor:
		return ansiGreen
	default:
		return ""
	}
}

func formatHours(minutes int) string {
	return fmt.Sprintf("%.2f", float64(minutes)/60)
}

// formatDateRange collapses a single-day range to one date.
func formatDateRange(report *hos.AnalysisReport) string {
	dateRange := report.Summary.DateRange
	return textutil.Ternary(dateRange.Start == dateRange.End,
		dateRange.Start,
		fmt.Sprintf("%s to %s", dateRange.Start, dateRange.End))
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
