package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/pkg/linking"
)

var detectInput string

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the language a set of linked items is displayed in",
	Long:  `Reads a JSON array of {"multilanId", "text"} items and votes on their language.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var items []linking.LinkedText
		if err := readInput(detectInput, &items); err != nil {
			fatal("Error reading items", err)
		}

		svc := mustService()
		lang, err := svc.DetectLanguage(items)
		if err != nil {
			fatal("Error detecting language", err)
		}

		if jsonOutput {
			printJSON(os.Stdout, map[string]string{"language": lang.String()})
			return
		}
		fmt.Println(lang)
	},
}

func init() {
	detectCmd.Flags().StringVarP(&detectInput, "input", "i", "-", "JSON file of linked items (- for stdin)")
	rootCmd.AddCommand(detectCmd)
}
