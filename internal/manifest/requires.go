package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckRequires verifies a template's semver constraint (the [template]
// requires field) against the running CLI version. An empty constraint
// always passes; dev builds skip the check since they carry no version.
func CheckRequires(constraint, version string) error {
	if constraint == "" {
		return nil
	}
	if version == "" || version == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("template requires petor %s, running %s", constraint, version)
	}
	return nil
}
