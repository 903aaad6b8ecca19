package hos

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/srb321/drivewise-reports/internal/dutylog"
)

// ruleCheck ties a category to the function that detects it. The table fixes
// both execution order and the category stamped on each finding; report and
// workbook ordering derive from it, so reordering entries here changes
// output order everywhere downstream.
type ruleCheck struct {
	category Category
	run      func(*dutylog.ParsedLog, Ruleset) []Violation
}

var ruleChecks = []ruleCheck{
	{CategoryOdometerJump, checkOdometerJump},
	{CategoryLocationChange, checkLocationChange},
	{CategoryStationaryDriving, checkStationaryWhileDriving},
	{CategoryDrivingHours, checkDrivingHoursExceeded},
	{CategoryOdometerMismatch, checkOdometerMismatchAtDateChange},
	{CategoryUnidentifiedDriving, checkUnidentifiedDriving},
	{CategoryAnnotations, checkAnnotationsPresent},
}

// previousTimedIndex finds the nearest preceding entry whose duration text
// is present and converts to a positive minute count. Rows without real
// elapsed time cannot anchor odometer or location comparisons.
func previousTimedIndex(entries []dutylog.LogEntry, from int) int {
	for i := from - 1; i >= 0; i-- {
		if strings.TrimSpace(entries[i].Duration) != "" && entries[i].DurationMinutes > 0 {
			return i
		}
	}
	return -1
}

// previousOdometerIndex finds the nearest preceding entry carrying an
// odometer reading.
func previousOdometerIndex(entries []dutylog.LogEntry, from int) int {
	for i := from - 1; i >= 0; i-- {
		if entries[i].Odometer != nil {
			return i
		}
	}
	return -1
}

func floatPtr(v float64) *float64 { return &v }

func formatOdometer(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// checkOdometerJump flags odometer gains with no driving period behind them.
// The reference entry is the nearest preceding one with real elapsed time;
// distance gained while that reference was not driving is unaccounted-for
// movement.
func checkOdometerJump(lg *dutylog.ParsedLog, rules Ruleset) []Violation {
	var out []Violation
	entries := lg.Entries
	for i := range entries {
		current, ok := entries[i].OdometerReading()
		if !ok {
			continue
		}
		refIdx := previousTimedIndex(entries, i)
		if refIdx < 0 {
			continue
		}
		ref := entries[refIdx]
		previous, ok := ref.OdometerReading()
		if !ok {
			continue
		}
		delta := current - previous
		if delta <= 0 || ref.IsDriving() {
			continue
		}
		severity := SeverityMajor
		if delta > rules.OdometerCriticalDelta {
			severity = SeverityCritical
		}
		out = append(out, Violation{
			Severity: severity,
			Driver:   lg.DriverName,
			Date:     entries[i].Date,
			Time:     entries[i].Time,
			Description: fmt.Sprintf("Odometer advanced by %s (from %s to %s) while the preceding timed activity was %q",
				formatOdometer(delta), formatOdometer(previous), formatOdometer(current), ref.Status),
			Details: Details{
				CurrentOdometer:  floatPtr(current),
				PreviousOdometer: floatPtr(previous),
				OdometerDelta:    floatPtr(delta),
				Status:           ref.Status,
				Duration:         ref.Duration,
			},
		})
	}
	return out
}

// checkLocationChange flags entries whose location moved since the previous
// entry while the nearest timed activity was something other than driving.
func checkLocationChange(lg *dutylog.ParsedLog, rules Ruleset) []Violation {
	var out []Violation
	entries := lg.Entries
	for i := 1; i < len(entries); i++ {
		currentLoc := strings.TrimSpace(entries[i].Location)
		previousLoc := strings.TrimSpace(entries[i-1].Location)
		if currentLoc == "" || previousLoc == "" || strings.EqualFold(currentLoc, previousLoc) {
			continue
		}
		refIdx := previousTimedIndex(entries, i)
		if refIdx < 0 || entries[refIdx].IsDriving() {
			continue
		}
		ref := entries[refIdx]
		out = append(out, Violation{
			Severity: SeverityMajor,
			Driver:   lg.DriverName,
			Date:     entries[i].Date,
			Time:     entries[i].Time,
			Description: fmt.Sprintf("Location changed from %q to %q without a driving period in between",
				previousLoc, currentLoc),
			Details: Details{
				CurrentLocation:  currentLoc,
				PreviousLocation: previousLoc,
				Status:           ref.Status,
				Duration:         ref.Duration,
			},
		})
	}
	return out
}

// checkStationaryWhileDriving flags driving stretches of meaningful length
// whose odometer matches the nearest preceding reading exactly.
func checkStationaryWhileDriving(lg *dutylog.ParsedLog, rules Ruleset) []Violation {
	var out []Violation
	entries := lg.Entries
	for i := range entries {
		entry := entries[i]
		if !entry.IsDriving() || entry.DurationMinutes < rules.StationaryMinimumMinutes {
			continue
		}
		current, ok := entry.OdometerReading()
		if !ok {
			continue
		}
		refIdx := previousOdometerIndex(entries, i)
		if refIdx < 0 {
			continue
		}
		previous, _ := entries[refIdx].OdometerReading()
		if previous != current {
			continue
		}
		out = append(out, Violation{
			Severity: SeverityMajor,
			Driver:   lg.DriverName,
			Date:     entry.Date,
			Time:     entry.Time,
			Description: fmt.Sprintf("Driving for %s with the odometer unchanged at %s",
				dutylog.FormatMinutes(entry.DurationMinutes), formatOdometer(current)),
			Details: Details{
				CurrentOdometer:  floatPtr(current),
				PreviousOdometer: floatPtr(previous),
				Duration:         entry.Duration,
				Status:           entry.Status,
			},
		})
	}
	return out
}

// checkDrivingHoursExceeded sums driving minutes per date and flags each
// date that lands strictly over the jurisdiction's daily allowance. The
// violation is date-scoped, so no time is set.
func checkDrivingHoursExceeded(lg *dutylog.ParsedLog, rules Ruleset) []Violation {
	limit := rules.DrivingLimitMinutes(lg.Country)
	totals := make(map[string]int)
	var order []string
	for _, entry := range lg.Entries {
		if !entry.IsDriving() {
			continue
		}
		if _, seen := totals[entry.Date]; !seen {
			order = append(order, entry.Date)
		}
		totals[entry.Date] += entry.DurationMinutes
	}

	var out []Violation
	for _, date := range order {
		total := totals[date]
		if total <= limit {
			continue
		}
		out = append(out, Violation{
			Severity: SeverityCritical,
			Driver:   lg.DriverName,
			Date:     date,
			Description: fmt.Sprintf("Drove %.2f hours on %s, exceeding the %.0f-hour limit for %s",
				float64(total)/60, date, float64(limit)/60, lg.Country.Normalize()),
			Details: Details{
				TotalDrivingHours: floatPtr(float64(total) / 60),
				AllowedHours:      floatPtr(float64(limit) / 60),
			},
		})
	}
	return out
}

// checkOdometerMismatchAtDateChange compares the last reading of each date
// with the first reading of the next date present in the log. Dates that do
// not parse as calendar dates are left out; there is no defensible ordering
// for them.
func checkOdometerMismatchAtDateChange(lg *dutylog.ParsedLog, rules Ruleset) []Violation {
	type dayReadings struct {
		date  string
		when  time.Time
		first dutylog.LogEntry
		last  dutylog.LogEntry
	}

	byDate := make(map[string]*dayReadings)
	var days []*dayReadings
	for i := range lg.Entries {
		entry := lg.Entries[i]
		if entry.Odometer == nil {
			continue
		}
		when, ok := dutylog.ParseDate(entry.Date)
		if !ok {
			continue
		}
		day, seen := byDate[entry.Date]
		if !seen {
			day = &dayReadings{date: entry.Date, when: when, first: entry}
			byDate[entry.Date] = day
			days = append(days, day)
		}
		day.last = entry
	}

	sort.SliceStable(days, func(i, j int) bool { return days[i].when.Before(days[j].when) })

	var out []Violation
	for i := 1; i < len(days); i++ {
		previous, current := days[i-1], days[i]
		lastReading, _ := previous.last.OdometerReading()
		firstReading, _ := current.first.OdometerReading()
		if lastReading == firstReading {
			continue
		}
		out = append(out, Violation{
			Severity: SeverityMajor,
			Driver:   lg.DriverName,
			Date:     current.date,
			Time:     current.first.Time,
			Description: fmt.Sprintf("First odometer reading %s on %s does not match the previous day's last reading %s",
				formatOdometer(firstReading), current.date, formatOdometer(lastReading)),
			Details: Details{
				CurrentOdometer:  floatPtr(firstReading),
				PreviousOdometer: floatPtr(lastReading),
				OdometerDelta:    floatPtr(firstReading - lastReading),
			},
		})
	}
	return out
}

// checkUnidentifiedDriving reports every unattributed driving event on
// Motive logs. Events usually carry no date of their own, so the document
// date stands in.
func checkUnidentifiedDriving(lg *dutylog.ParsedLog, rules Ruleset) []Violation {
	if lg.Format != dutylog.FormatMotive || len(lg.UnidentifiedEvents) == 0 {
		return nil
	}
	var out []Violation
	for _, event := range lg.UnidentifiedEvents {
		if !event.IsDriving() {
			continue
		}
		date := event.Date
		if strings.TrimSpace(date) == "" {
			date = lg.LogDate
		}
		details := Details{
			Status:          event.Status,
			Duration:        event.Duration,
			CurrentLocation: event.Location,
		}
		if reading, ok := event.OdometerReading(); ok {
			details.CurrentOdometer = floatPtr(reading)
		}
		out = append(out, Violation{
			Severity:    SeverityCritical,
			Driver:      lg.DriverName,
			Date:        date,
			Time:        event.Time,
			Description: "Driving event recorded by the device without an authenticated driver",
			Details:     details,
		})
	}
	return out
}

// checkAnnotationsPresent surfaces entries carrying free-text notes so a
// reviewer can read what the operator wrote. Informational, hence Minor.
func checkAnnotationsPresent(lg *dutylog.ParsedLog, rules Ruleset) []Violation {
	var out []Violation
	for _, entry := range lg.Entries {
		parts := entry.Annotations()
		if len(parts) == 0 {
			continue
		}
		joined := strings.Join(parts, " | ")
		out = append(out, Violation{
			Severity:    SeverityMinor,
			Driver:      lg.DriverName,
			Date:        entry.Date,
			Time:        entry.Time,
			Description: "Entry carries operator annotations: " + joined,
			Details: Details{
				Notes:  joined,
				Status: entry.Status,
			},
		})
	}
	return out
}
