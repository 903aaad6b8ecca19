package textutil_test

import (
	"strings"
	"testing"

	"github.com/srb321/drivewise-reports/internal/textutil"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "dates with slashes", input: "violations_3/5/2024_3/7/2024.xlsx", want: "violations_3-5-2024_3-7-2024.xlsx"},
		{name: "removed characters", input: `report<>"|?.xlsx`, want: "report.xlsx"},
		{name: "trimmed", input: "  report.xlsx  ", want: "report.xlsx"},
		{name: "empty input", input: "", want: ""},
		{name: "already clean", input: "violations_report.xlsx", want: "violations_report.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textutil.SanitizeFileName(tt.input); got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "slash replaced", input: "Notes/Remarks Present", want: "Notes-Remarks Present"},
		{name: "brackets replaced", input: "Rules [active]", want: "Rules (active)"},
		{name: "over limit truncated", input: "Odometer Mismatch at Date Change", want: "Odometer Mismatch at Date Chang"},
		{name: "at limit untouched", input: "Location Change Without Driving", want: "Location Change Without Driving"},
		{name: "empty falls back", input: "", want: "Sheet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textutil.SanitizeSheetName(tt.input)
			if got != tt.want {
				t.Fatalf("SanitizeSheetName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if len([]rune(got)) > 31 {
				t.Fatalf("sheet name %q exceeds 31 runes", got)
			}
			if strings.ContainsAny(got, `/\:*?[]`) {
				t.Fatalf("sheet name %q still carries forbidden characters", got)
			}
		})
	}
}
