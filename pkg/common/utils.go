package common

import "regexp"

// Matches versions like 0.5.10 or v0.8.24
var semverRegex = regexp.MustCompile(`^v?\d+\.\d+\.\d+$`)

// IsSemver checks if a version string is valid
func IsSemver(s string) bool {
	return semverRegex.MatchString(s)
}
