package domain

// Decision is the per-manifest outcome of a compatibility check.
type Decision int

const (
	// DecisionAccepted means the package is compatible and will be installed.
	DecisionAccepted Decision = iota

	// DecisionExcludedOptional means an optional package failed a check and
	// is dropped from installation without failing the run.
	DecisionExcludedOptional

	// DecisionRejected means a required package failed a check and the
	// installation must abort.
	DecisionRejected
)

// String returns a human-readable name for the decision.
func (d Decision) String() string {
	switch d {
	case DecisionAccepted:
		return "accepted"
	case DecisionExcludedOptional:
		return "excluded-optional"
	case DecisionRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
