// Package export renders an analysis report as an XLSX workbook: a summary
// sheet, a flattened all-violations sheet, one sheet per violation category,
// and a duty-status sheet with every parsed entry.
//
// Sheet identifiers are sanitized and truncated to Excel's 31-character
// limit here; the engine supplies full category names.
package export
