// Package ports defines the core interfaces for the application.
package ports

// Reporter is the one-way message sink used to surface compatibility
// findings to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Info emits an informational message.
	Info(msg string)
	// Warn emits an advisory message.
	Warn(msg string)
	// Error emits an error-level message.
	Error(msg string)
}
