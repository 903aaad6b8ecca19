package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe
// alternatives. Slashes show up routinely here because report names embed
// calendar dates like 3/5/2024.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a file name.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of surrounding whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// maxSheetNameLength is Excel's hard limit on sheet identifiers.
const maxSheetNameLength = 31

// sheetNameReplacer strips the characters Excel forbids in sheet names.
var sheetNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "-",
	"[", "(",
	"]", ")",
)

// SanitizeSheetName converts free text into a legal Excel sheet identifier:
// forbidden characters are replaced and the result is cut to 31 runes.
// Empty input falls back to "Sheet".
func SanitizeSheetName(name string) string {
	cleaned := strings.TrimSpace(sheetNameReplacer.Replace(name))
	if cleaned == "" {
		return "Sheet"
	}
	runes := []rune(cleaned)
	if len(runes) > maxSheetNameLength {
		cleaned = string(runes[:maxSheetNameLength])
	}
	return cleaned
}
