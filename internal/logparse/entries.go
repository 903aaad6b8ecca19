package logparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/srb321/drivewise-reports/internal/dutylog"
)

// minimumRowFields is the smallest token count a line can have and still be
// treated as a data row rather than prose that happens to mention a status.
const minimumRowFields = 2

// parseEntryLine recovers a duty-status entry from one line of document text.
// It reports false for lines that are not data rows: too few fields or no
// duty-status keyword.
func parseEntryLine(line string) (dutylog.LogEntry, bool) {
	fields := strings.Fields(line)
	if len(fields) < minimumRowFields {
		return dutylog.LogEntry{}, false
	}
	status, ok := matchStatus(line)
	if !ok {
		return dutylog.LogEntry{}, false
	}
	return newEntryFromLine(line, fields, status), true
}

// newEntryFromLine runs every field extractor against the line. Extractors
// are independent: each one degrades to an empty or absent value on its own
// without affecting the others.
func newEntryFromLine(line string, fields []string, status string) dutylog.LogEntry {
	entry := dutylog.LogEntry{
		Status:   status,
		RawRow:   fields,
		Time:     clockTimePattern.FindString(line),
		Odometer: extractOdometer(line),
		Location: extractLocation(line),
		Notes:    captureAnnotation(notesPattern, line),
		Remarks:  captureAnnotation(remarksPattern, line),
		Comments: captureAnnotation(commentsPattern, line),
	}
	entry.Duration = extractDuration(line)
	entry.DurationMinutes = dutylog.DurationMinutes(entry.Duration)
	return entry
}

// matchStatus scans the vocabulary table against the lowercased line and
// returns the canonical label of the first marker found.
func matchStatus(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, kw := range statusVocabulary {
		if strings.Contains(lower, kw.marker) {
			return kw.canonical, true
		}
	}
	return "", false
}

// extractOdometer takes the first numeric token carrying at least four
// digits, strips grouping characters, and parses what remains. A token that
// still fails to parse leaves the odometer unknown rather than zero.
func extractOdometer(line string) *float64 {
	for _, token := range odometerTokenPattern.FindAllString(line, -1) {
		if digitCount(token) < 4 {
			continue
		}
		cleaned := odometerStripPattern.ReplaceAllString(token, "")
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		return &value
	}
	return nil
}

func digitCount(token string) int {
	count := 0
	for _, r := range token {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

// extractDuration picks the line's duration token. When a line carries two or
// more clock-shaped tokens the first is assumed to be the entry timestamp and
// the second is taken as the duration.
func extractDuration(line string) string {
	tokens := durationTokenPattern.FindAllString(line, -1)
	switch {
	case len(tokens) == 0:
		return ""
	case len(tokens) == 1:
		return tokens[0]
	default:
		return tokens[1]
	}
}

// extractLocation prefers a "City, ST" spelling and falls back to a decimal
// coordinate pair.
func extractLocation(line string) string {
	if location := cityStatePattern.FindString(line); location != "" {
		return location
	}
	return coordinatePattern.FindString(line)
}

func captureAnnotation(pattern *regexp.Regexp, line string) string {
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// extractUnidentifiedEvents collects driving rows that follow an
// "unidentified" marker line. The marker line itself is never an event, and
// rows are held to the same data-row shape as regular entries with their
// status forced to driving.
func extractUnidentifiedEvents(lines []string) []dutylog.LogEntry {
	var events []dutylog.LogEntry
	marked := false
	for _, line := range lines {
		lower := strings.ToLower(line)
		if marked && strings.Contains(lower, "driving") {
			fields := strings.Fields(line)
			if len(fields) < minimumRowFields {
				continue
			}
			events = append(events, newEntryFromLine(line, fields, drivingLabel))
			continue
		}
		if strings.Contains(lower, "unidentified") {
			marked = true
		}
	}
	return events
}
