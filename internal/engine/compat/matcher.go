// Package compat implements the package compatibility gate that runs before
// installation: platform and architecture matching plus engine version checks.
package compat

import "strings"

// Matches reports whether actual satisfies a declared platform or
// architecture list. Plain entries form a whitelist; entries prefixed with
// "!" form a blacklist. An exact whitelist match always wins. If no entry
// matches either way, the result is true only when the list contained at
// least one blacklist entry ("deny these, allow the rest"); a pure whitelist
// that never matched yields false, as does an empty list.
func Matches(declared []string, actual string) bool {
	sawBlacklist := false
	for _, entry := range declared {
		if entry == actual {
			return true
		}
		if strings.HasPrefix(entry, "!") {
			if entry[1:] == actual {
				return false
			}
			sawBlacklist = true
		}
	}
	return sawBlacklist
}
