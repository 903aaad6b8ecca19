package hos

import (
	"log/slog"
	"sort"
	"time"

	"github.com/srb321/drivewise-reports/internal/dutylog"
	"github.com/srb321/drivewise-reports/internal/logging"
)

// Engine runs the rule checks over batches of parsed logs.
type Engine struct {
	rules  Ruleset
	ids    IDSource
	logger *slog.Logger
}

// New constructs an Engine. A nil ids source falls back to random UUIDs, a
// nil logger disables diagnostics, and unset thresholds take their defaults.
func New(rules Ruleset, ids IDSource, logger *slog.Logger) *Engine {
	if ids == nil {
		ids = NewUUIDSource()
	}
	return &Engine{
		rules:  rules.withDefaults(),
		ids:    ids,
		logger: logging.NewComponentLogger(logger, "hos"),
	}
}

// Analyze runs every rule check over the batch and aggregates the findings.
// Logs are processed in ascending calendar order of their document date with
// each log's entries time-sorted first; violations append in check-table
// order within each log, which fixes report order end to end. The input
// slice itself is not reordered, but entry slices are sorted in place.
func (e *Engine) Analyze(input []dutylog.ParsedLog) AnalysisReport {
	logs := append([]dutylog.ParsedLog(nil), input...)
	sortLogsByDate(logs)
	for i := range logs {
		sortEntriesByTime(logs[i].Entries)
	}

	violations := make([]Violation, 0)
	for i := range logs {
		lg := &logs[i]
		for _, check := range ruleChecks {
			found := check.run(lg, e.rules)
			for _, violation := range found {
				violation.ID = e.ids.NextID()
				violation.Category = check.category
				violations = append(violations, violation)
			}
			if len(found) > 0 {
				e.logger.Debug("check matched",
					logging.String(logging.FieldCategory, string(check.category)),
					logging.String(logging.FieldDriver, lg.DriverName),
					logging.Int(logging.FieldCount, len(found)))
			}
		}
	}

	byCategory := make(map[Category]int, len(allCategories))
	for _, category := range allCategories {
		byCategory[category] = 0
	}
	for _, violation := range violations {
		byCategory[violation.Category]++
	}

	report := AnalysisReport{
		GeneratedAt:          time.Now().UTC(),
		TotalViolations:      len(violations),
		ViolationsByCategory: byCategory,
		Violations:           violations,
		ParsedLogs:           logs,
		Summary:              buildSummary(logs),
	}

	e.logger.Info("analysis complete",
		logging.Int("logs", len(logs)),
		logging.Int("violations", len(violations)))

	return report
}

// sortLogsByDate orders logs ascending by calendar document date. Logs whose
// date does not parse sort ahead of dated ones and keep their relative order.
func sortLogsByDate(logs []dutylog.ParsedLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		di, iOK := logs[i].LogCalendarDate()
		dj, jOK := logs[j].LogCalendarDate()
		switch {
		case iOK && jOK:
			return di.Before(dj)
		case !iOK && jOK:
			return true
		default:
			return false
		}
	})
}

// sortEntriesByTime orders entries by their clock-time string. The
// comparison is plain lexicographic on the HH:MM-shaped values, and entries
// without a time sort first.
func sortEntriesByTime(entries []dutylog.LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
}
