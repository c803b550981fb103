package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	binFlag string
	dirFlag string
)

var rootCmd = &cobra.Command{
	Use:           "shipcheck",
	Short:         "Pre-publish checks for Deno and JSR packages",
	Long:          "Shipcheck runs a fixed sequence of release checks and stops at the first failure:\ntoolchain up to date, version bumped past the latest tag, publish dry run clean.",
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runAllChecks,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&binFlag, "bin", "deno", "toolchain binary used for the upgrade and publish checks")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", ".", "package root containing the manifest")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
