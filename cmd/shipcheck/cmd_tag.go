package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/shipcheck/pkg/check"
	"github.com/vertti/shipcheck/pkg/manifest"
	"github.com/vertti/shipcheck/pkg/output"
	"github.com/vertti/shipcheck/pkg/tagcheck"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Check that the manifest version is bumped past the latest git tag",
	Args:  cobra.NoArgs,
	RunE:  runTagCheck,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

func runTagCheck(cmd *cobra.Command, args []string) error {
	projectVersion, _, err := manifest.Version(dirFlag)
	if err != nil {
		output.Error(err.Error())
		return ErrCheckFailed
	}
	return runItems(&check.RealExecutor{}, []check.Item{tagcheck.New(projectVersion)})
}
