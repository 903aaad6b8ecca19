package dutylog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration spellings, tried in order. The clock form wins over unit forms so
// "1:30" is ninety minutes, never one minute.
var (
	clockDurationPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::\d{2})?`)
	hourMinutePattern    = regexp.MustCompile(`(?i)(\d+)\s*h(?:(?:ou)?rs?)?(?:\s*(?:and\s+)?(\d+)\s*m?(?:in(?:ute)?s?)?)?`)
	minutesOnlyPattern   = regexp.MustCompile(`(?i)(\d+)\s*m(?:in(?:ute)?s?)?\b`)
)

// DurationMinutes converts a duration spelling into whole minutes. It
// understands clock spans ("1:30", "1:30:45" with seconds dropped), unit
// pairs ("1h 30m", "2 hours 15"), and bare minute counts ("90 min").
// Anything else, including the empty string, is zero minutes; the result is
// never negative.
func DurationMinutes(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}

	if m := clockDurationPattern.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}

	if m := hourMinutePattern.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		return hours*60 + minutes
	}

	if m := minutesOnlyPattern.FindStringSubmatch(trimmed); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}

	return 0
}

// FormatMinutes renders a minute count the way dispatch reports spell
// durations: "45m", "11h", "11h 40m". Zero and negative counts render as
// "0m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	hours := minutes / 60
	rest := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
}
