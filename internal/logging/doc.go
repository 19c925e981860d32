// Package logging builds the slog loggers longbox uses.
//
// Two handler flavors exist: a console handler that renders
// "TIME LEVEL component: message key=value" lines for terminals, and a JSON
// handler for machine consumption. Output can fan out to stdout/stderr and a
// log file under the configured log directory.
package logging
