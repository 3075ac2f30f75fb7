package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/pkg/core"
)

// catalogStats summarizes the loaded catalog.
type catalogStats struct {
	Source       string                    `json:"source"`
	Generation   string                    `json:"generation"`
	Translations int                       `json:"translations"`
	Languages    map[core.LanguageCode]int `json:"languages"`
	Statuses     map[core.Status]int       `json:"statuses"`
	Metadata     int                       `json:"metadata"`
	State        any                       `json:"state,omitempty"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the catalog: entries per language and status",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		store, err := svc.Store()
		if err != nil {
			fatal("Error reading catalog", err)
		}

		stats := catalogStats{
			Source:       store.Source(),
			Generation:   store.Generation(),
			Translations: store.Count(),
			Languages:    make(map[core.LanguageCode]int),
			Statuses:     make(map[core.Status]int),
			Metadata:     len(store.Metadata()),
		}
		store.Translations().Range(func(_ core.CanonicalID, t core.Translations) bool {
			for lang := range t {
				stats.Languages[lang]++
			}
			return true
		})
		for _, md := range store.Metadata() {
			if md.Status != "" {
				stats.Statuses[md.Status]++
			}
		}

		if jsonOutput {
			stats.State = svc.State()
			printJSON(os.Stdout, stats)
			return
		}

		fmt.Printf("Source:       %s\n", stats.Source)
		fmt.Printf("Generation:   %s\n", stats.Generation)
		fmt.Printf("Translations: %d\n", stats.Translations)
		fmt.Printf("Metadata:     %d\n", stats.Metadata)
		for _, lang := range core.Languages() {
			fmt.Printf("  %s: %d\n", lang, stats.Languages[lang])
		}
		for _, s := range core.Statuses() {
			if n := stats.Statuses[s]; n > 0 {
				fmt.Printf("  %s: %d\n", s, n)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
