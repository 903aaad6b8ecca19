package hos

import (
	"time"

	"github.com/srb321/drivewise-reports/internal/dutylog"
)

// DateRange spans the calendar dates a report covers. Start and End keep the
// source spelling of the earliest and latest document dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Summary aggregates batch-wide counts.
type Summary struct {
	TotalEntries        int       `json:"total_entries"`
	TotalDrivingMinutes int       `json:"total_driving_minutes"`
	DateRange           DateRange `json:"date_range"`
}

// AnalysisReport is the terminal artifact of one analysis run. ParsedLogs
// retains the analyzed input so every violation can be traced back to its
// source rows.
type AnalysisReport struct {
	GeneratedAt          time.Time           `json:"generated_at"`
	TotalViolations      int                 `json:"total_violations"`
	ViolationsByCategory map[Category]int    `json:"violations_by_category"`
	Violations           []Violation         `json:"violations"`
	ParsedLogs           []dutylog.ParsedLog `json:"parsed_logs"`
	Summary              Summary             `json:"summary"`
}

// CriticalCount reports how many violations carry Critical severity.
func (r *AnalysisReport) CriticalCount() int {
	count := 0
	for _, violation := range r.Violations {
		if violation.Severity == SeverityCritical {
			count++
		}
	}
	return count
}

// ViolationsInCategory returns the report's violations of one category,
// preserving report order.
func (r *AnalysisReport) ViolationsInCategory(category Category) []Violation {
	var out []Violation
	for _, violation := range r.Violations {
		if violation.Category == category {
			out = append(out, violation)
		}
	}
	return out
}

// buildSummary totals entries and driving minutes across logs and finds the
// calendar range their document dates span. Logs without a parseable date
// count toward the totals but not the range.
func buildSummary(logs []dutylog.ParsedLog) Summary {
	summary := Summary{
		DateRange: DateRange{Start: dutylog.UnknownDate, End: dutylog.UnknownDate},
	}

	var minWhen, maxWhen time.Time
	for _, lg := range logs {
		summary.TotalEntries += len(lg.Entries)
		for _, entry := range lg.Entries {
			if entry.IsDriving() {
				summary.TotalDrivingMinutes += entry.DurationMinutes
			}
		}
		when, ok := lg.LogCalendarDate()
		if !ok {
			continue
		}
		if minWhen.IsZero() || when.Before(minWhen) {
			minWhen = when
			summary.DateRange.Start = lg.LogDate
		}
		if maxWhen.IsZero() || when.After(maxWhen) {
			maxWhen = when
			summary.DateRange.End = lg.LogDate
		}
	}

	return summary
}
