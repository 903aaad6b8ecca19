// Package logging builds the slog loggers used across drivewise.
//
// Two output formats are supported: a console format meant for humans
// running the CLI interactively, and a JSON format for log files and
// anything downstream that wants structured records. Attribute helpers and
// the shared field-name constants live here so every component spells its
// keys the same way.
package logging
