package logparse

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/srb321/drivewise-reports/internal/dutylog"
)

// formatSignature ties a vendor marker substring to the layout it identifies.
// Signatures are matched against the lowercased document in table order and
// the first hit wins, so both Motive spellings stay ahead of Samsara.
type formatSignature struct {
	marker string
	format dutylog.Format
}

var formatSignatures = []formatSignature{
	{marker: "motive", format: dutylog.FormatMotive},
	{marker: "keeptruckin", format: dutylog.FormatMotive},
	{marker: "samsara", format: dutylog.FormatSamsara},
}

// Jurisdiction markers, matched against the lowercased document. The Canadian
// table is scanned before the US one so a cross-border document lands on the
// stricter Canadian duty-hour limits.
var canadaMarkers = []string{
	"canada", "canadian",
	"alberta", "british columbia", "manitoba", "new brunswick",
	"newfoundland", "northwest territories", "nova scotia", "nunavut",
	"ontario", "prince edward island", "quebec", "saskatchewan", "yukon",
}

var usaMarkers = []string{
	"usa", "u.s.", "united states", "america",
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"new hampshire", "new jersey", "new mexico", "new york",
	"north carolina", "north dakota", "ohio", "oklahoma", "oregon",
	"pennsylvania", "rhode island", "south carolina", "south dakota",
	"tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west virginia", "wisconsin", "wyoming",
}

// documentDatePatterns are tried in order against the full document text and
// the first match anywhere wins: M/D/YYYY, then YYYY-MM-DD, then M-D-YYYY,
// then a textual month form. The matched text is stored as-is so reports show
// the date the way the document spelled it.
var documentDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
	regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{1,2},?\s+\d{4}\b`),
}

// driverNamePattern captures two capitalized words after a Driver: or Name:
// label. The label is case-insensitive but the name itself must be
// capitalized, which keeps uppercase table headers from matching.
var driverNamePattern = regexp.MustCompile(`(?i:driver|name)\s*:\s*([A-Z][a-z]+[ \t]+[A-Z][a-z]+)`)

// Row-level field patterns.
var (
	clockTimePattern     = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?(?:\s?(?i:am|pm))?\b`)
	durationTokenPattern = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)
	odometerTokenPattern = regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?\b`)
	odometerStripPattern = regexp.MustCompile(`[^0-9.]`)
	cityStatePattern     = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:[ \t][A-Z][a-zA-Z]+)*,[ \t]*[A-Z]{2}\b`)
	coordinatePattern    = regexp.MustCompile(`-?\d{1,3}\.\d+,\s*-?\d{1,3}\.\d+`)
)

// Annotation labels captured up to the next field delimiter on the line.
var (
	notesPattern    = regexp.MustCompile(`(?i:notes?)\s*:\s*([^|;\r\n]+)`)
	remarksPattern  = regexp.MustCompile(`(?i:remarks?)\s*:\s*([^|;\r\n]+)`)
	commentsPattern = regexp.MustCompile(`(?i:comments?)\s*:\s*([^|;\r\n]+)`)
)

// statusKeyword ties a lowercased duty-status marker to the canonical label
// recorded on entries. Markers are scanned in table order, so the hyphenated
// spellings sit after their spaced twins and never shadow them.
type statusKeyword struct {
	marker    string
	canonical string
}

var statusVocabulary = buildStatusVocabulary()

// drivingLabel is the canonical status forced onto unidentified events.
var drivingLabel = statusVocabulary[0].canonical

func buildStatusVocabulary() []statusKeyword {
	markers := []string{
		"driving",
		"on duty",
		"off duty",
		"sleeper",
		"on-duty",
		"off-duty",
		"personal",
		"yard move",
	}
	title := cases.Title(language.Und)
	vocabulary := make([]statusKeyword, 0, len(markers))
	for _, marker := range markers {
		vocabulary = append(vocabulary, statusKeyword{marker: marker, canonical: title.String(marker)})
	}
	return vocabulary
}
