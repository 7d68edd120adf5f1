// Package logging builds the slog loggers used across chatrelay.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for log aggregation. The "auto" format selects console when
// stdout is a terminal. Handlers honour a component attribute so subsystem
// loggers created with WithComponent render a readable prefix.
package logging
