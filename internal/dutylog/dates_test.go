package dutylog_test

import (
	"testing"
	"time"

	"github.com/srb321/drivewise-reports/internal/dutylog"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{"slash", "3/5/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"slash padded", "03/05/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"iso", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"dash", "3-5-2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"full month", "March 5, 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"abbreviated month", "Mar 5 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"surrounding space", "  3/5/2024  ", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"unknown sentinel", dutylog.UnknownDate, time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"time of day", "8:15", time.Time{}, false},
		{"two digit year", "3/5/24", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := dutylog.ParseDate(tc.value)
			if ok != tc.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tc.value, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}
