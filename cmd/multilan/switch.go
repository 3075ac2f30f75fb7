package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/linking"
)

var (
	switchInput  string
	switchTarget string
)

var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Plan the texts to display linked items in another language",
	Long: `Reads a JSON array of {"identity", "multilanId", "values"} items and prints
the target wording of each one with its variable values applied.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		target, ok := core.ParseLanguageCode(switchTarget)
		if !ok {
			fatal("Invalid language", fmt.Errorf("%q is not one of %v", switchTarget, core.Languages()))
		}

		var items []linking.SwitchItem
		if err := readInput(switchInput, &items); err != nil {
			fatal("Error reading items", err)
		}

		svc := mustService()
		plan, err := svc.PlanSwitch(items, target)
		if err != nil {
			fatal("Error planning switch", err)
		}

		if jsonOutput {
			printJSON(os.Stdout, plan)
			return
		}

		for _, c := range plan.Changes {
			fmt.Printf("%s\t%s\t%s\n", c.Identity, c.ID, c.Text)
		}
		fmt.Printf("Switched %d item(s) to %s, %d missing\n", plan.Result.Success, plan.Language, len(plan.Result.Missing))
		for _, id := range plan.Result.Missing {
			fmt.Printf("  missing %s\n", id)
		}
	},
}

func init() {
	switchCmd.Flags().StringVarP(&switchInput, "input", "i", "-", "JSON file of items (- for stdin)")
	switchCmd.Flags().StringVarP(&switchTarget, "to", "t", core.DefaultLanguage.String(), "Target language")
	rootCmd.AddCommand(switchCmd)
}
