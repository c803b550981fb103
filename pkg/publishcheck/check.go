// Package publishcheck runs the registry publish dry run.
package publishcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/shipcheck/pkg/check"
)

// Validator fails when the dry run exited non-zero, surfacing the
// registry diagnostics.
type Validator struct{}

// Validate maps the dry run's exit code to pass/fail.
func (Validator) Validate(res check.ExecResult) (string, error) {
	if res.ExitCode != 0 {
		diag := strings.TrimSpace(res.Stderr)
		if diag == "" {
			diag = strings.TrimSpace(res.Stdout)
		}
		if diag == "" {
			diag = fmt.Sprintf("publish dry run exited with code %d", res.ExitCode)
		}
		return "", fmt.Errorf("publish dry run failed: %s", diag)
	}
	return "dry run publish succeeded", nil
}

// New builds the publish dry-run check item. bin is the toolchain
// binary doing the publishing.
func New(bin string) check.Item {
	return check.Item{
		Name:      "publish dry run",
		Command:   []string{bin, "publish", "--dry-run"},
		Validator: Validator{},
	}
}
