// Package tagcheck verifies the manifest version was bumped past the
// most recent git tag.
package tagcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/shipcheck/pkg/check"
	"github.com/vertti/shipcheck/pkg/version"
)

// Validator fails when Version is not newer than the latest tag.
type Validator struct {
	Version string // manifest version about to be published
}

// Validate inspects the output of "git describe --tags --abbrev=0".
// A repository without any tag passes: there is nothing to be ahead of.
func (v *Validator) Validate(res check.ExecResult) (string, error) {
	if res.ExitCode != 0 {
		stderr := strings.TrimSpace(res.Stderr)
		lower := strings.ToLower(stderr)
		if strings.Contains(lower, "no names found") || strings.Contains(lower, "cannot describe") {
			return fmt.Sprintf("no existing tag, publishing %s", v.Version), nil
		}
		return "", fmt.Errorf("git describe failed: %s", stderr)
	}

	tag := strings.TrimSpace(res.Stdout)
	if tag == "" {
		return "", fmt.Errorf("git describe returned no tag")
	}
	if !version.IsNewer(tag, v.Version) {
		return "", fmt.Errorf("version %s not bumped since last tag %s", v.Version, tag)
	}
	return fmt.Sprintf("%s is ahead of %s", v.Version, tag), nil
}

// New builds the version-vs-tag check item for the given manifest
// version.
func New(projectVersion string) check.Item {
	return check.Item{
		Name:      "git tag",
		Command:   []string{"git", "describe", "--tags", "--abbrev=0"},
		Validator: &Validator{Version: projectVersion},
	}
}
