package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/pkg/variables"
)

var varValues map[string]string

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Inspect and fill ###name### variable templates",
}

var varsExtractCmd = &cobra.Command{
	Use:   "extract <text>",
	Short: "List the distinct variable names of a text",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		names := variables.Extract(strings.Join(args, " "))
		if jsonOutput {
			printJSON(os.Stdout, names)
			return
		}
		for _, n := range names {
			fmt.Println(n)
		}
	},
}

var varsOccurrencesCmd = &cobra.Command{
	Use:   "occurrences <text>",
	Short: "List every variable occurrence with its replacement key",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		occ := variables.ExtractOccurrences(strings.Join(args, " "))
		if jsonOutput {
			printJSON(os.Stdout, occ)
			return
		}
		for _, o := range occ {
			fmt.Printf("%s\t%s\t%d\n", o.Name, o.Key, o.Index)
		}
	},
}

var varsReplaceCmd = &cobra.Command{
	Use:   "replace <text>",
	Short: "Fill variables with --set name=value (name_2=value for the 2nd occurrence)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(variables.Replace(strings.Join(args, " "), varValues))
	},
}

func init() {
	varsReplaceCmd.Flags().StringToStringVar(&varValues, "set", nil, "Variable values (name=value)")
	varsCmd.AddCommand(varsExtractCmd, varsOccurrencesCmd, varsReplaceCmd)
	rootCmd.AddCommand(varsCmd)
}
