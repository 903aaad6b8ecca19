package logparse

import (
	"log/slog"
	"strings"

	"github.com/srb321/drivewise-reports/internal/dutylog"
	"github.com/srb321/drivewise-reports/internal/logging"
)

// Parser recovers structured duty-status logs from extracted document text.
// A single Parser is safe for concurrent use; every Parse call works on its
// own state.
type Parser struct {
	logger *slog.Logger
}

// New constructs a Parser. A nil logger disables parse diagnostics.
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{logger: logger.With(logging.String(logging.FieldComponent, "logparse"))}
}

// Parse converts one document's text into a ParsedLog. Parsing never fails:
// every field that cannot be recovered degrades to its empty or sentinel
// value, and a document without recognizable rows yields a log with no
// entries.
func (p *Parser) Parse(sourceName, text string) dutylog.ParsedLog {
	lower := strings.ToLower(text)

	parsed := dutylog.ParsedLog{
		SourceName: sourceName,
		DriverName: extractDriverName(text),
		LogDate:    extractDocumentDate(text),
		Country:    detectCountry(lower).Normalize(),
		Format:     detectFormat(lower),
		Entries:    []dutylog.LogEntry{},
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	for _, line := range lines {
		if entry, ok := parseEntryLine(line); ok {
			parsed.Entries = append(parsed.Entries, entry)
		}
	}

	if parsed.Format == dutylog.FormatMotive && strings.Contains(lower, "unidentified") && strings.Contains(lower, "event") {
		parsed.UnidentifiedEvents = extractUnidentifiedEvents(lines)
	}

	// Entries inherit the document date; unidentified events keep their own
	// (usually empty) date so downstream checks can fall back explicitly.
	for i := range parsed.Entries {
		parsed.Entries[i].Date = parsed.LogDate
	}

	p.logger.Debug("parsed document",
		logging.String("source", sourceName),
		logging.String("format", string(parsed.Format)),
		logging.String("country", string(parsed.Country)),
		logging.String("log_date", parsed.LogDate),
		logging.Int("entries", len(parsed.Entries)),
		logging.Int("unidentified_events", len(parsed.UnidentifiedEvents)))

	return parsed
}

// detectFormat scans for vendor markers in signature-table order.
func detectFormat(lowerText string) dutylog.Format {
	for _, sig := range formatSignatures {
		if strings.Contains(lowerText, sig.marker) {
			return sig.format
		}
	}
	return dutylog.FormatGeneric
}

// detectCountry scans the Canadian marker table, then the US one. Documents
// mentioning neither report Unknown and are normalized by the caller.
func detectCountry(lowerText string) dutylog.Country {
	for _, marker := range canadaMarkers {
		if strings.Contains(lowerText, marker) {
			return dutylog.CountryCanada
		}
	}
	for _, marker := range usaMarkers {
		if strings.Contains(lowerText, marker) {
			return dutylog.CountryUSA
		}
	}
	return dutylog.CountryUnknown
}

// extractDocumentDate returns the first date-shaped text found by the
// document date patterns, trying each pattern in table order.
func extractDocumentDate(text string) string {
	for _, pattern := range documentDatePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return dutylog.UnknownDate
}

// extractDriverName returns the first labeled driver name in the document.
func extractDriverName(text string) string {
	match := driverNamePattern.FindStringSubmatch(text)
	if match == nil {
		return dutylog.UnknownDriver
	}
	return match[1]
}
