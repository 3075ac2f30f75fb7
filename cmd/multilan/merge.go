package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/internal/platform"
	"github.com/aretw0/multilan/pkg/adapters/fs"
)

var mergeOut string

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge every catalog page into a single file",
	Long: `Merges every catalog page into one payload. Files named *` + fs.MergedSuffix + `
are never read back as pages; any other output path the catalog would load is refused.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		src := fs.NewSource(fs.Config{
			Path:    cfg.Catalog.Path,
			Pattern: cfg.Catalog.Pattern,
			Exclude: append(catalogExcludes(), "**/"+platform.ConfigFile),
			Logger:  slog.Default(),
		})

		if src.Contains(mergeOut) {
			fatal("Invalid output", fmt.Errorf("%s would be read back as a catalog page; use a *%s name or write outside %s", mergeOut, fs.MergedSuffix, cfg.Catalog.Path))
		}

		files, err := src.Files()
		if err != nil {
			fatal("Error listing catalog", err)
		}
		merged, err := src.Merged(context.Background())
		if err != nil {
			fatal("Error merging catalog", err)
		}
		if err := fs.WritePayload(mergeOut, merged); err != nil {
			fatal("Error writing merged catalog", err)
		}
		fmt.Printf("Merged %d file(s) into %s\n", len(files), mergeOut)
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "catalog"+fs.MergedSuffix, "Output file")
	rootCmd.AddCommand(mergeCmd)
}
