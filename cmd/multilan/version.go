package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of multilan",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("multilan version %s\n", multilan.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
