// Package upgradecheck verifies the local toolchain is the latest
// stable release before publishing.
package upgradecheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vertti/shipcheck/pkg/check"
	"github.com/vertti/shipcheck/pkg/version"
)

// latestRe matches the upgrade subcommand's "latest stable version
// vX.Y.Z" diagnostic.
var latestRe = regexp.MustCompile(`latest stable version v?(\d+\.\d+\.\d+)`)

// versionRe extracts the first x.y.z from a --version banner.
var versionRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Validator fails when the upgrade dry run advertises a stable version
// newer than Current.
type Validator struct {
	Current string // installed toolchain version, e.g. "2.1.4"
}

// Validate scans the dry-run diagnostics for an advertised latest
// version. No advertisement means the toolchain is current.
func (v *Validator) Validate(res check.ExecResult) (string, error) {
	m := latestRe.FindStringSubmatch(res.Stdout + "\n" + res.Stderr)
	if m == nil {
		return fmt.Sprintf("%s is up to date", v.Current), nil
	}
	latest := m[1]
	if version.IsNewer(v.Current, latest) {
		return "", fmt.Errorf("newer version available: v%s (current v%s), upgrade before publishing", latest, v.Current)
	}
	return fmt.Sprintf("%s is up to date", v.Current), nil
}

// New builds the toolchain upgrade check item. bin is the toolchain
// binary and current its installed version.
func New(bin, current string) check.Item {
	return check.Item{
		Name:      bin + " version",
		Command:   []string{bin, "upgrade", "--dry-run"},
		Validator: &Validator{Current: current},
	}
}

// CurrentVersion runs "<bin> --version" and extracts the installed
// version from the banner's first line.
func CurrentVersion(exec check.Executor, bin string) (string, error) {
	res, err := exec.Execute([]string{bin, "--version"})
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%s --version exited with code %d: %s", bin, res.ExitCode, strings.TrimSpace(res.Output()))
	}
	v := versionRe.FindString(res.Output())
	if v == "" {
		return "", fmt.Errorf("could not find a version in %s --version output", bin)
	}
	return v, nil
}
