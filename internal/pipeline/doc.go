// Package pipeline orchestrates a batch analysis run: extract and parse each
// source document on a small worker pool, collect per-document failures
// without aborting the batch, then hand the complete set of parsed logs to
// the violation engine in one call.
//
// Results are collected by input position, so the produced report does not
// depend on worker scheduling.
package pipeline
