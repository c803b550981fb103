// Package version implements the release-gate version comparison.
package version

import (
	"strconv"
	"strings"
)

// component is one numeric part of a version string. Unparseable or
// missing parts carry ok=false and never satisfy a less-than test,
// in either direction.
type component struct {
	n  int
	ok bool
}

// components splits s on dots and parses the first three parts,
// stripping any non-digit characters inside a part first ("v1" -> 1,
// "3-rc" -> 3). Missing parts and parts with no digits left are
// marked non-comparable.
func components(s string) [3]component {
	parts := strings.Split(s, ".")
	var out [3]component
	for i := 0; i < 3; i++ {
		if i >= len(parts) {
			continue
		}
		n, err := strconv.Atoi(stripNonDigits(parts[i]))
		if err != nil {
			continue
		}
		out[i] = component{n: n, ok: true}
	}
	return out
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsNewer reports whether candidate is newer than current. It scans the
// major, minor and patch components in order and returns true at the
// first index where current is less than candidate.
//
// The scan does not stop when an earlier component of current is
// greater: IsNewer("1.3.0", "1.2.9") is true because the patch
// components still get compared. This matches the behavior of the
// release tooling shipcheck replaces; callers that need full semantic
// ordering should not use this function.
//
// Components beyond the third are ignored, and components that do not
// parse as numbers compare as "not newer". There are no error
// conditions.
func IsNewer(current, candidate string) bool {
	cur := components(current)
	cand := components(candidate)
	for i := 0; i < 3; i++ {
		if cur[i].ok && cand[i].ok && cur[i].n < cand[i].n {
			return true
		}
	}
	return false
}
