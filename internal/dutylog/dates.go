package dutylog

import (
	"strings"
	"time"
)

// dateLayouts lists the calendar-date spellings seen across ELD exports, in
// the order they are tried. Slash and dash forms tolerate single-digit
// month and day; textual forms accept full or abbreviated month names with
// an optional comma.
var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"1-2-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// ParseDate interprets a recovered date string as a calendar date. It
// reports false for empty values, the UnknownDate sentinel, and spellings
// outside the supported layouts.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, UnknownDate) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
