// Package reporter implements the user-facing message sink using log/slog.
package reporter

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/hoist/internal/core/ports"
)

// Reporter implements ports.Reporter using log/slog.
type Reporter struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Reporter writing to stderr.
func New() ports.Reporter {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Reporter{
		logger: slog.New(handler),
	}
}

// SetOutput updates the reporter's output destination.
// This is thread-safe and replaces the underlying slog handler.
func (r *Reporter) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = slog.New(handler)
}

// Info emits an informational message.
func (r *Reporter) Info(msg string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.logger.Info(msg)
}

// Warn emits an advisory message.
func (r *Reporter) Warn(msg string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.logger.Warn(msg)
}

// Error emits an error-level message.
func (r *Reporter) Error(msg string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.logger.Error(msg)
}
