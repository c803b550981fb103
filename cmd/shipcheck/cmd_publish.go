package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/shipcheck/pkg/check"
	"github.com/vertti/shipcheck/pkg/publishcheck"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Run the registry publish dry run",
	Args:  cobra.NoArgs,
	RunE:  runPublishCheck,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublishCheck(cmd *cobra.Command, args []string) error {
	return runItems(&check.RealExecutor{}, []check.Item{publishcheck.New(binFlag)})
}
