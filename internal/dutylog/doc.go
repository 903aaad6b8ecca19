// Package dutylog defines the structured duty-status model recovered from
// driver log documents.
//
// A ParsedLog is the unit of work for the rest of the system: the parser
// produces one per document and the violation engine consumes batches of
// them. Entries keep the raw row tokens alongside the recovered fields so
// downstream reports can always trace a finding back to source text.
//
// The package also owns the small shared vocabularies the parser and engine
// must agree on: calendar-date spellings, duration spellings, and the
// Unknown sentinels used when recovery fails.
package dutylog
