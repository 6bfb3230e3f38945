// Package logging builds the slog loggers used across keysmith.
//
// Two handlers are provided: a console handler that prints one line per
// record (UTC timestamp, level, optional component prefix, key=value
// attrs) and a JSON handler for machine consumption. The "auto" format
// picks console when stdout is a terminal and JSON otherwise.
package logging
