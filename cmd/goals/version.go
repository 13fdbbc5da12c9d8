package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/goals"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goals",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "goals version %s\n", strings.TrimSpace(goals.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
