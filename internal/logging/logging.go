// Package logging provides the single threaded logger that generation
// progress and boundary restart attempts are reported through; seed
// exhaustion and skipped Voronoi cells are not logged individually. No
// example repo in the retrieval pack imports a
// third-party logging library, so this wraps the standard library's
// log/slog rather than inventing or fabricating a dependency; see
// DESIGN.md for the stdlib-only justification.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is a thin handle around *slog.Logger, passed explicitly from
// cmd/citygen through citygen.Config.Logger to Generate and drawBoundary
// rather than reached for as a package-level global. The component
// packages (streamline, voronoi, island, graph) do not take a logger.
type Logger struct {
	*slog.Logger
}

// New builds a Logger that writes leveled, structured text to w.
func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Default returns a Logger writing info-and-above to stderr, the CLI's
// default when no other sink is configured.
func Default() *Logger {
	return New(os.Stderr, slog.LevelInfo)
}

// Discard returns a Logger that drops every record, for callers (tests,
// library embedders) that don't want generation progress on stderr.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}
