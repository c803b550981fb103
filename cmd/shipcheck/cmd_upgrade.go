package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/shipcheck/pkg/check"
	"github.com/vertti/shipcheck/pkg/output"
	"github.com/vertti/shipcheck/pkg/upgradecheck"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Check that the toolchain is the latest stable release",
	Args:  cobra.NoArgs,
	RunE:  runUpgradeCheck,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgradeCheck(cmd *cobra.Command, args []string) error {
	exec := &check.RealExecutor{}
	current, err := upgradecheck.CurrentVersion(exec, binFlag)
	if err != nil {
		output.Error(err.Error())
		return ErrCheckFailed
	}
	return runItems(exec, []check.Item{upgradecheck.New(binFlag, current)})
}
