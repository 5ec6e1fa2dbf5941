package compat

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// engineAliases maps legacy engine names to their modern successors before
// the environment lookup.
var engineAliases = map[string]string{
	"iojs": "node",
}

// ignoredEngines are pseudo-engines that never correspond to an installed
// runtime on the host; declaring them is not worth a warning.
var ignoredEngines = map[string]struct{}{
	"npm":     {},
	"yarn":    {},
	"webpack": {},
}

// Checker validates one manifest's declared runtime requirements against the
// host environment.
type Checker struct {
	env      domain.Environment
	reporter ports.Reporter
}

// NewChecker creates a Checker for the given host environment.
func NewChecker(env domain.Environment, reporter ports.Reporter) *Checker {
	return &Checker{
		env:      env,
		reporter: reporter,
	}
}

// Check evaluates the OS, CPU, and engine requirements of the manifest.
// All three categories are evaluated even when an earlier one already failed,
// so the user sees every reason a package is incompatible.
//
// The returned decision tells the caller how to treat the package; the error
// is non-nil only for a rejected required package (domain.ErrIncompatibleModule)
// or a manifest that lost its graph reference (domain.ErrMissingReference).
func (c *Checker) Check(m *domain.Manifest) (domain.Decision, error) {
	if m.Reference == nil {
		// Wrap keeps the sentinel reachable via errors.Is; With on a
		// sentinel returns a detached copy.
		err := zerr.Wrap(domain.ErrMissingReference, "")
		return domain.DecisionRejected, zerr.With(err, "package", m.Human())
	}

	var violations []string

	if len(m.OS) > 0 && !Matches(m.OS, c.env.Platform) {
		violations = append(violations,
			fmt.Sprintf("%s: the platform %q is incompatible with this module", m.Human(), c.env.Platform))
	}

	if len(m.CPU) > 0 && !Matches(m.CPU, c.env.Arch) {
		violations = append(violations,
			fmt.Sprintf("%s: the CPU architecture %q is incompatible with this module", m.Human(), c.env.Arch))
	}

	violations = append(violations, c.checkEngines(m)...)

	if len(violations) == 0 {
		return domain.DecisionAccepted, nil
	}

	if m.Reference.Optional {
		for i, v := range violations {
			c.reporter.Warn(v)
			if i == 0 {
				c.reporter.Info(fmt.Sprintf(
					"%s is an optional dependency and failed compatibility check, excluding it from installation",
					m.Human()))
			}
		}
		return domain.DecisionExcludedOptional, nil
	}

	for _, v := range violations {
		c.reporter.Error(v)
	}

	// Wrap keeps the sentinel reachable via errors.Is; With on a sentinel
	// returns a detached copy.
	err := zerr.Wrap(domain.ErrIncompatibleModule, "")
	err = zerr.With(err, "package", m.Name)
	err = zerr.With(err, "version", m.Version)
	return domain.DecisionRejected, err
}

// checkEngines returns the engine violations for the manifest. Unknown
// engines and unparsable declarations are advisory warnings only and never
// contribute a violation.
func (c *Checker) checkEngines(m *domain.Manifest) []string {
	var violations []string

	for _, name := range slices.Sorted(maps.Keys(m.Engines)) {
		rng := m.Engines[name]

		resolved := name
		if alias, ok := engineAliases[name]; ok {
			resolved = alias
		}

		installed, ok := c.env.EngineVersion(resolved)
		if !ok {
			if _, skip := ignoredEngines[resolved]; !skip {
				c.reporter.Warn(fmt.Sprintf("%s: the engine %q appears to be invalid", m.Human(), name))
			}
			continue
		}

		constraint, err := semver.NewConstraint(rng)
		if err != nil {
			c.reporter.Warn(fmt.Sprintf("%s: the engine %q declares an invalid version range %q", m.Human(), name, rng))
			continue
		}

		version, err := semver.NewVersion(installed)
		if err != nil {
			c.reporter.Warn(fmt.Sprintf("%s: the installed %q version %q could not be parsed", m.Human(), name, installed))
			continue
		}

		if !constraint.Check(version) {
			violations = append(violations, fmt.Sprintf(
				"%s: the engine %q is incompatible with this module. Expected version %q. Got %q",
				m.Human(), name, rng, installed))
		}
	}

	return violations
}
