package domain

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

// semverPattern matches MAJOR.MINOR.PATCH with optional -prerelease and
// +buildmetadata suffixes per the semantic versioning grammar.
var semverPattern = regexp.MustCompile(
	`^(\d+)\.(\d+)\.(\d+)` +
		`(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?` +
		`(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`,
)

// ExtractVersion strips a single leading "v" or "V" prefix from a tag
// (e.g. "v1.2.3" becomes "1.2.3"). A bare "v" is returned unchanged.
func ExtractVersion(tag string) string {
	if len(tag) > 1 && (tag[0] == 'v' || tag[0] == 'V') {
		return tag[1:]
	}
	return tag
}

// IsSemver reports whether a tag, after prefix stripping, follows the
// semantic versioning grammar.
func IsSemver(tag string) bool {
	return semverPattern.MatchString(ExtractVersion(tag))
}

// CompareTags compares two version tags, returning a negative number when
// tag1 orders before tag2, zero when they compare equal, and a positive
// number otherwise.
//
// When both normalised tags are semver, MAJOR, MINOR and PATCH are compared
// numerically; a component that does not parse as an unsigned integer counts
// as 0. Prerelease and build metadata suffixes carry no precedence, so
// "1.0.0-rc1" compares equal to "1.0.0". Tags that are not semver fall back
// to lexical comparison of the normalised strings.
func CompareTags(tag1, tag2 string) int {
	clean1 := ExtractVersion(tag1)
	clean2 := ExtractVersion(tag2)

	if !IsSemver(clean1) || !IsSemver(clean2) {
		return strings.Compare(clean1, clean2)
	}

	parts1 := strings.Split(clean1, ".")
	parts2 := strings.Split(clean2, ".")

	for i := 0; i < 3; i++ {
		if i >= len(parts1) || i >= len(parts2) {
			// A version ran out of components; shorter orders first.
			return cmp.Compare(len(parts1), len(parts2))
		}

		n1 := numericComponent(parts1[i])
		n2 := numericComponent(parts2[i])
		if n1 != n2 {
			return cmp.Compare(n1, n2)
		}
	}

	return 0
}

// numericComponent parses a dot-separated version component, treating
// anything unparseable (e.g. "0-rc1") as 0.
func numericComponent(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
