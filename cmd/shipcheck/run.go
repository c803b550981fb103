package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/shipcheck/pkg/check"
	"github.com/vertti/shipcheck/pkg/manifest"
	"github.com/vertti/shipcheck/pkg/output"
	"github.com/vertti/shipcheck/pkg/publishcheck"
	"github.com/vertti/shipcheck/pkg/tagcheck"
	"github.com/vertti/shipcheck/pkg/upgradecheck"
)

// ErrCheckFailed is returned when a check fails. The failure itself has
// already been printed; Cobra turns the error into exit code 1.
var ErrCheckFailed = errors.New("check failed")

// defaultItems builds the standard release gate: toolchain upgrade,
// version vs tag, publish dry run, in that order.
func defaultItems(exec check.Executor, bin, dir string) ([]check.Item, error) {
	current, err := upgradecheck.CurrentVersion(exec, bin)
	if err != nil {
		return nil, err
	}
	projectVersion, _, err := manifest.Version(dir)
	if err != nil {
		return nil, err
	}
	return []check.Item{
		upgradecheck.New(bin, current),
		tagcheck.New(projectVersion),
		publishcheck.New(bin),
	}, nil
}

// runItems executes the items and folds any failure into the exit-code
// sentinel.
func runItems(exec check.Executor, items []check.Item) error {
	r := &check.Runner{Exec: exec}
	if err := r.RunAll(items); err != nil {
		return ErrCheckFailed
	}
	return nil
}

func runAllChecks(cmd *cobra.Command, args []string) error {
	exec := &check.RealExecutor{}
	items, err := defaultItems(exec, binFlag, dirFlag)
	if err != nil {
		output.Error(err.Error())
		return ErrCheckFailed
	}
	return runItems(exec, items)
}
