package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/srb321/drivewise-reports/internal/dutylog"
	"github.com/srb321/drivewise-reports/internal/hos"
	"github.com/srb321/drivewise-reports/internal/textutil"
)

const (
	summarySheet       = "Summary"
	allViolationsSheet = "All Violations"
	entriesSheet       = "Duty Status"
)

// Write renders the report as an XLSX workbook on w.
func Write(report hos.AnalysisReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummary(f, report); err != nil {
		return err
	}
	if err := writeViolations(f, allViolationsSheet, report.Violations); err != nil {
		return err
	}
	for _, category := range hos.Categories() {
		name := textutil.SanitizeSheetName(string(category))
		if err := writeViolations(f, name, report.ViolationsInCategory(category)); err != nil {
			return err
		}
	}
	if err := writeEntries(f, report.ParsedLogs); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile renders the report workbook at path.
func WriteFile(report hos.AnalysisReport, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	if err := Write(report, out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeSummary(f *excelize.File, report hos.AnalysisReport) error {
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	rows := [][]any{
		{"Generated At", report.GeneratedAt.Format(time.RFC3339)},
		{"Total Violations", report.TotalViolations},
		{"Critical Violations", report.CriticalCount()},
		{"Total Entries", report.Summary.TotalEntries},
		{"Total Driving Minutes", report.Summary.TotalDrivingMinutes},
		{"Start Date", report.Summary.DateRange.Start},
		{"End Date", report.Summary.DateRange.End},
		nil,
		{"Category", "Violations"},
	}
	for _, category := range hos.Categories() {
		rows = append(rows, []any{string(category), report.ViolationsByCategory[category]})
	}

	for i, row := range rows {
		if row == nil {
			continue
		}
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

var violationHeader = []any{
	"ID", "Category", "Severity", "Driver", "Date", "Time", "Description",
	"Odometer", "Previous Odometer", "Odometer Delta",
	"Location", "Previous Location", "Duration", "Status",
	"Driving Hours", "Allowed Hours", "Notes",
}

func writeViolations(f *excelize.File, sheet string, violations []hos.Violation) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, violationHeader); err != nil {
		return err
	}
	for i, v := range violations {
		row := []any{
			v.ID, string(v.Category), string(v.Severity), v.Driver, v.Date, v.Time, v.Description,
			floatCell(v.Details.CurrentOdometer),
			floatCell(v.Details.PreviousOdometer),
			floatCell(v.Details.OdometerDelta),
			stringCell(v.Details.CurrentLocation),
			stringCell(v.Details.PreviousLocation),
			stringCell(v.Details.Duration),
			stringCell(v.Details.Status),
			floatCell(v.Details.TotalDrivingHours),
			floatCell(v.Details.AllowedHours),
			stringCell(v.Details.Notes),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

var entryHeader = []any{
	"Source", "Driver", "Date", "Time", "Status", "Duration", "Minutes",
	"Odometer", "Location", "Notes", "Remarks", "Comments",
}

func writeEntries(f *excelize.File, logs []dutylog.ParsedLog) error {
	if _, err := f.NewSheet(entriesSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", entriesSheet, err)
	}
	if err := setRow(f, entriesSheet, 1, entryHeader); err != nil {
		return err
	}
	row := 2
	for _, lg := range logs {
		for _, entry := range lg.Entries {
			values := []any{
				lg.SourceName, lg.DriverName, entry.Date, entry.Time, entry.Status,
				stringCell(entry.Duration), entry.DurationMinutes,
				floatCell(entry.Odometer),
				stringCell(entry.Location),
				stringCell(entry.Notes), stringCell(entry.Remarks), stringCell(entry.Comments),
			}
			if err := setRow(f, entriesSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// setRow writes values left to right starting at column A, skipping nils so
// absent fields stay as empty cells.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func floatCell(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func stringCell(value string) any {
	if value == "" {
		return nil
	}
	return value
}
