package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/pkg/core"
)

var linkInput string

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Classify a batch of text items as exact, fuzzy or unmatched",
	Long: `Reads a JSON array of {"identity", "text"} items and links each one
against the catalog: exact wording matches first, then fuzzy suggestions.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var items []core.Candidate
		if err := readInput(linkInput, &items); err != nil {
			fatal("Error reading items", err)
		}

		svc := mustService()
		res, err := svc.BulkMatch(items)
		if err != nil {
			fatal("Error linking", err)
		}

		if jsonOutput {
			printJSON(os.Stdout, res)
			return
		}

		fmt.Printf("Exact: %d, Fuzzy: %d, Unmatched: %d\n", len(res.ExactMatches), len(res.FuzzyMatches), len(res.Unmatched))
		for _, m := range res.ExactMatches {
			fmt.Printf("  = %s -> %s\n", m.Item.Identity, m.MultilanID)
		}
		for _, m := range res.FuzzyMatches {
			fmt.Printf("  ~ %s -> %s (%.2f)\n", m.Item.Identity, m.Suggestions[0].ID, m.Suggestions[0].Score)
		}
		for _, item := range res.Unmatched {
			fmt.Printf("  ? %s\n", item.Identity)
		}
	},
}

func init() {
	linkCmd.Flags().StringVarP(&linkInput, "input", "i", "-", "JSON file of items (- for stdin)")
	rootCmd.AddCommand(linkCmd)
}
