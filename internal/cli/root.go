// Package cli wires the cobra command tree: vacuum comparison, toy-model
// prediction, the measurement pipeline, config validation and workspace
// scaffolding.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/buildinfo"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "gopvac",
		Short:        "gopvac — ΛCDM vs GoP vacuum energy and void–CMB measurement",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .gopvac/logs/gopvac.log")

	cmd.AddCommand(vacuumCmd())
	cmd.AddCommand(predictCmd())
	cmd.AddCommand(measureCmd(&debug))
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
