// Package extraction turns source documents into the plain text the log
// parser consumes.
//
// The package is the seam between the filesystem and the parsing core: an
// Extractor yields one Document per source file, and the Registry picks an
// Extractor by file extension. Only plain-text sources ship here; richer
// formats (PDF, images) plug in behind the same interface without touching
// the parser.
package extraction
