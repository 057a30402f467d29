package runtime

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion strips a leading "v" or "go" and parses the version string.
// Partial versions such as "16" or "3.8" are accepted.
func ParseVersion(version string) (*semver.Version, error) {
	version = strings.TrimSpace(version)
	version = strings.TrimPrefix(version, "go")
	version = strings.TrimPrefix(version, "v")
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return v, nil
}

// AtLeast reports whether version is greater than or equal to minimum.
func AtLeast(version, minimum string) (bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return false, err
	}
	m, err := ParseVersion(minimum)
	if err != nil {
		return false, err
	}
	return !v.LessThan(m), nil
}

// Major returns the major component of version.
func Major(version string) (uint64, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return 0, err
	}
	return v.Major(), nil
}
