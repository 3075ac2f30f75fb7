package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/internal/platform"
	"github.com/aretw0/multilan/pkg/core"
)

var (
	searchGlobal bool
	searchLimit  int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank catalog entries by similarity to a query",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts []platform.Option
		if cmd.Flags().Changed("limit") {
			opts = append(opts, platform.WithSearchLimit(searchLimit))
		}
		svc := mustService(opts...)

		query := strings.Join(args, " ")
		var hits []core.SearchResult
		var err error
		if searchGlobal {
			hits, err = svc.GlobalSearch(query)
		} else {
			hits, err = svc.Search(query)
		}
		if err != nil {
			fatal("Error searching", err)
		}

		if jsonOutput {
			printJSON(os.Stdout, hits)
			return
		}

		if len(hits) == 0 {
			fmt.Println("No results.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSCORE\tWORDING")
		for _, h := range hits {
			fmt.Fprintf(w, "%s\t%.2f\t%s\n", h.ID, h.Score, firstWording(h.Translations))
		}
		w.Flush()
	},
}

// firstWording returns the wording in the first language by priority.
func firstWording(t core.Translations) string {
	var out string
	t.Each(func(lang core.LanguageCode, wording string) bool {
		out = fmt.Sprintf("[%s] %s", lang, wording)
		return false
	})
	return out
}

func init() {
	searchCmd.Flags().BoolVarP(&searchGlobal, "global", "g", false, "Match IDs exactly and include variables and metadata")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum number of results (0 = no limit)")
	rootCmd.AddCommand(searchCmd)
}
