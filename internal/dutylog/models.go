package dutylog

import (
	"strings"
	"time"
)

// Country identifies the jurisdiction whose duty-hour rules apply to a log.
type Country string

const (
	CountryUSA     Country = "USA"
	CountryCanada  Country = "Canada"
	CountryUnknown Country = "Unknown"
)

// Format identifies the ELD vendor layout a document was recognized as.
type Format string

const (
	FormatMotive  Format = "Motive"
	FormatSamsara Format = "Samsara"
	FormatGeneric Format = "Generic"
)

// UnknownDate marks a document whose log date could not be recovered.
const UnknownDate = "Unknown"

// UnknownDriver marks a document whose driver name could not be recovered.
const UnknownDriver = "Unknown Driver"

// ParseCountry maps free-form text onto a known jurisdiction value.
func ParseCountry(value string) (Country, bool) {
	switch Country(strings.TrimSpace(value)) {
	case CountryUSA:
		return CountryUSA, true
	case CountryCanada:
		return CountryCanada, true
	case CountryUnknown:
		return CountryUnknown, true
	default:
		return "", false
	}
}

// Normalize resolves an undetected jurisdiction to the default one. Duty-hour
// rules always evaluate against a concrete country, and US limits are the
// documented fallback.
func (c Country) Normalize() Country {
	if c == CountryCanada {
		return CountryCanada
	}
	return CountryUSA
}

// ParseFormat maps free-form text onto a known source format value.
func ParseFormat(value string) (Format, bool) {
	switch Format(strings.TrimSpace(value)) {
	case FormatMotive:
		return FormatMotive, true
	case FormatSamsara:
		return FormatSamsara, true
	case FormatGeneric:
		return FormatGeneric, true
	default:
		return "", false
	}
}

// LogEntry is one recovered duty-status row. Fields that could not be
// recovered from the source row stay at their zero values; Odometer is a
// pointer because a reading of zero is a real measurement while a missing
// reading is not.
type LogEntry struct {
	Date            string   `json:"date,omitempty"`
	Time            string   `json:"time,omitempty"`
	Status          string   `json:"status"`
	Duration        string   `json:"duration,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Odometer        *float64 `json:"odometer,omitempty"`
	Location        string   `json:"location,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Remarks         string   `json:"remarks,omitempty"`
	Comments        string   `json:"comments,omitempty"`
	RawRow          []string `json:"raw_row,omitempty"`
}

// OdometerReading reports the entry's odometer value and whether one was
// recovered at all.
func (e LogEntry) OdometerReading() (float64, bool) {
	if e.Odometer == nil {
		return 0, false
	}
	return *e.Odometer, true
}

// IsDriving reports whether the entry records time spent driving. Status
// comparisons are case-insensitive so hand-built logs behave like parsed
// ones.
func (e LogEntry) IsDriving() bool {
	return strings.EqualFold(strings.TrimSpace(e.Status), "driving")
}

// Annotations returns the non-empty free-text fields attached to the entry,
// in notes, remarks, comments order.
func (e LogEntry) Annotations() []string {
	var parts []string
	for _, text := range []string{e.Notes, e.Remarks, e.Comments} {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// ParsedLog is the structured result of parsing one source document.
type ParsedLog struct {
	SourceName         string     `json:"source_name,omitempty"`
	DriverName         string     `json:"driver_name"`
	LogDate            string     `json:"log_date"`
	Country            Country    `json:"country"`
	Format             Format     `json:"format"`
	Entries            []LogEntry `json:"entries"`
	UnidentifiedEvents []LogEntry `json:"unidentified_events,omitempty"`
}

// LogCalendarDate reports the log's document date as a calendar value when
// it parses as one.
func (l ParsedLog) LogCalendarDate() (t time.Time, ok bool) {
	return ParseDate(l.LogDate)
}
