// Package hos applies hours-of-service and data-integrity checks to parsed
// driver logs.
//
// The Engine consumes a batch of ParsedLogs, normalizes their ordering, runs
// a fixed table of rule checks over each log, and aggregates the findings
// into an AnalysisReport. Check order, entry order, and log order are all
// deterministic: the same input always yields the same violation list apart
// from generated identifiers and the report timestamp.
//
// Thresholds live in a Ruleset so tuning a limit never touches check logic,
// and violation identifiers come from an injected IDSource so tests can pin
// them down.
package hos
