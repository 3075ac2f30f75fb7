package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/pkg/core"
)

var matchID string

var matchCmd = &cobra.Command{
	Use:   "match [text]",
	Short: "Classify a single text (or an already linked ID)",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && matchID == "" {
			return fmt.Errorf("requires a text argument or --id")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()

		item := core.Candidate{Identity: "cli", Text: strings.Join(args, " ")}
		if matchID != "" {
			id, err := core.CanonicalizeID(matchID)
			if err != nil {
				fatal("Invalid ID", err)
			}
			item.CanonicalID = id
		}

		c, err := svc.DetectMatch(item)
		if err != nil {
			fatal("Error matching", err)
		}

		if jsonOutput {
			printJSON(os.Stdout, c)
			return
		}

		switch c.Kind {
		case core.MatchLinked, core.MatchExact:
			fmt.Printf("%s %s\n", c.Kind, c.ID)
			c.Translations.Each(func(lang core.LanguageCode, wording string) bool {
				fmt.Printf("  %s: %s\n", lang, wording)
				return true
			})
		case core.MatchClose:
			fmt.Println(c.Kind)
			for _, s := range c.Suggestions {
				fmt.Printf("  %s (%.2f) %s\n", s.ID, s.Score, firstWording(s.Translations))
			}
		default:
			fmt.Println(c.Kind)
		}
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchID, "id", "", "Catalog ID the item is already linked to")
	rootCmd.AddCommand(matchCmd)
}
