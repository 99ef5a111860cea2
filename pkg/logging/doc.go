// Package logging configures slog with a handler that embeds source
// context into every line.
//
// Lines carry the project-relative source path as a dotted namespace, the
// receiver type name when the record was emitted from a method, the
// function name, and the line number, so a reader can jump from a log line
// straight to the emitting source line.
package logging
