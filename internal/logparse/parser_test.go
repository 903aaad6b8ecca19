package logparse_test

import (
	"reflect"
	"testing"

	"github.com/srb321/drivewise-reports/internal/dutylog"
	"github.com/srb321/drivewise-reports/internal/logparse"
)

const motiveDocument = `Motive ELD Daily Log
Driver: John Smith
Date: 3/5/2024
Texas Division

08:00 AM | Driving | 2:30 | 45230 | Dallas, TX | Notes: routine haul
10:30 AM | On Duty | 0:15 | 45395 | Fort Worth, TX
`

func TestParseMotiveDocument(t *testing.T) {
	parsed := logparse.New(nil).Parse("march5.txt", motiveDocument)

	if parsed.SourceName != "march5.txt" {
		t.Fatalf("source = %q, want march5.txt", parsed.SourceName)
	}
	if parsed.Format != dutylog.FormatMotive {
		t.Fatalf("format = %q, want Motive", parsed.Format)
	}
	if parsed.Country != dutylog.CountryUSA {
		t.Fatalf("country = %q, want USA", parsed.Country)
	}
	if parsed.DriverName != "John Smith" {
		t.Fatalf("driver = %q, want John Smith", parsed.DriverName)
	}
	if parsed.LogDate != "3/5/2024" {
		t.Fatalf("log date = %q, want 3/5/2024", parsed.LogDate)
	}
	if len(parsed.Entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(parsed.Entries))
	}

	first := parsed.Entries[0]
	if first.Status != "Driving" || first.Time != "08:00 AM" || first.Duration != "2:30" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Date != "3/5/2024" {
		t.Fatalf("entry date not backfilled: %q", first.Date)
	}

	second := parsed.Entries[1]
	if second.Status != "On Duty" || second.Location != "Fort Worth, TX" {
		t.Fatalf("unexpected second entry: %+v", second)
	}
	if reading, ok := second.OdometerReading(); !ok || reading != 45395 {
		t.Fatalf("second entry odometer = %v (%v), want 45395", reading, ok)
	}
	if len(parsed.UnidentifiedEvents) != 0 {
		t.Fatalf("expected no unidentified events, got %d", len(parsed.UnidentifiedEvents))
	}
}

func TestParseFormatDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want dutylog.Format
	}{
		{name: "motive marker", text: "Motive ELD export\n08:00 driving run", want: dutylog.FormatMotive},
		{name: "legacy keeptruckin marker", text: "KeepTruckin daily summary\n08:00 driving run", want: dutylog.FormatMotive},
		{name: "samsara marker", text: "Samsara Fleet Report\n08:00 driving run", want: dutylog.FormatSamsara},
		{name: "no vendor marker", text: "Daily log\n08:00 driving run", want: dutylog.FormatGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := logparse.New(nil).Parse("doc.txt", tt.text)
			if parsed.Format != tt.want {
				t.Fatalf("format = %q, want %q", parsed.Format, tt.want)
			}
		})
	}
}

func TestParseCountryDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want dutylog.Country
	}{
		{name: "province marker", text: "Route through Ontario"},
		{name: "country word", text: "Canadian carrier permit"},
		{name: "canada wins over us state", text: "Travel from Texas to Ontario"},
		{name: "state marker", text: "Dispatch out of Texas", want: dutylog.CountryUSA},
		{name: "no marker defaults to usa", text: "Daily log summary", want: dutylog.CountryUSA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			if want == "" {
				want = dutylog.CountryCanada
			}
			parsed := logparse.New(nil).Parse("doc.txt", tt.text)
			if parsed.Country != want {
				t.Fatalf("country = %q, want %q", parsed.Country, want)
			}
		})
	}
}

func TestParseDocumentDatePrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "slash form wins over iso", text: "Report 2024-03-05 covering 3/5/2024", want: "3/5/2024"},
		{name: "iso form", text: "Report for 2024-03-05", want: "2024-03-05"},
		{name: "dash form", text: "Report for 3-5-2024", want: "3-5-2024"},
		{name: "textual month", text: "Log for March 5, 2024", want: "March 5, 2024"},
		{name: "abbreviated month", text: "Log for Mar 5 2024", want: "Mar 5 2024"},
		{name: "no date", text: "Log without any dates", want: dutylog.UnknownDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := logparse.New(nil).Parse("doc.txt", tt.text)
			if parsed.LogDate != tt.want {
				t.Fatalf("log date = %q, want %q", parsed.LogDate, tt.want)
			}
		})
	}
}

func TestParseDriverName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "driver label", text: "Driver: John Smith", want: "John Smith"},
		{name: "name label", text: "Name: Jane Doe", want: "Jane Doe"},
		{name: "uppercase name rejected", text: "DRIVER: JOHN SMITH", want: dutylog.UnknownDriver},
		{name: "missing label", text: "Daily log", want: dutylog.UnknownDriver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := logparse.New(nil).Parse("doc.txt", tt.text)
			if parsed.DriverName != tt.want {
				t.Fatalf("driver = %q, want %q", parsed.DriverName, tt.want)
			}
		})
	}
}

func TestParseUnidentifiedEvents(t *testing.T) {
	text := `Motive ELD Export
Date: 3/6/2024

Unidentified Driver Events
02:15 Driving 0:45 1200.5
03:30 Driving continued
Summary section
`
	parsed := logparse.New(nil).Parse("doc.txt", text)

	if len(parsed.UnidentifiedEvents) != 2 {
		t.Fatalf("expected two unidentified events, got %d", len(parsed.UnidentifiedEvents))
	}
	first := parsed.UnidentifiedEvents[0]
	if first.Status != "Driving" {
		t.Fatalf("event status = %q, want Driving", first.Status)
	}
	if first.Time != "02:15" || first.Duration != "0:45" || first.DurationMinutes != 45 {
		t.Fatalf("unexpected first event timing: %+v", first)
	}
	if reading, ok := first.OdometerReading(); !ok || reading != 1200.5 {
		t.Fatalf("event odometer = %v (%v), want 1200.5", reading, ok)
	}
	if first.Date != "" {
		t.Fatalf("events must not receive the document date, got %q", first.Date)
	}

	// The same lines also parse as regular entries, and those do get the
	// document date.
	if len(parsed.Entries) != 2 {
		t.Fatalf("expected two regular entries, got %d", len(parsed.Entries))
	}
	for _, entry := range parsed.Entries {
		if entry.Date != "3/6/2024" {
			t.Fatalf("entry date = %q, want 3/6/2024", entry.Date)
		}
	}
}

func TestParseUnidentifiedEventsGated(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "non-motive format",
			text: "Samsara Report\nUnidentified Driver Events\n02:15 Driving 0:45",
		},
		{
			name: "marker without the word event",
			text: "Motive Export\nUnidentified entries follow\n02:15 Driving 0:45",
		},
		{
			name: "no marker at all",
			text: "Motive Export\n02:15 Driving 0:45 events logged",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := logparse.New(nil).Parse("doc.txt", tt.text)
			if len(parsed.UnidentifiedEvents) != 0 {
				t.Fatalf("expected no unidentified events, got %d", len(parsed.UnidentifiedEvents))
			}
		})
	}
}

func TestParseBackfillsUnknownDate(t *testing.T) {
	parsed := logparse.New(nil).Parse("doc.txt", "08:00 driving local run")
	if parsed.LogDate != dutylog.UnknownDate {
		t.Fatalf("log date = %q, want Unknown", parsed.LogDate)
	}
	if len(parsed.Entries) != 1 || parsed.Entries[0].Date != dutylog.UnknownDate {
		t.Fatalf("entry should carry the Unknown sentinel, got %+v", parsed.Entries)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	parser := logparse.New(nil)
	first := parser.Parse("march5.txt", motiveDocument)
	second := parser.Parse("march5.txt", motiveDocument)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated parses differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
