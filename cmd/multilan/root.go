package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/internal/config"
	"github.com/aretw0/multilan/internal/platform"
	"github.com/aretw0/multilan/pkg/catalog"
)

var (
	verbose     bool
	jsonOutput  bool
	configPath  string
	catalogPath string
	pattern     string

	cfg *config.Config
	// cfgFile is the absolute path of the config file in use, if any.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "multilan",
	Short: "Resolve text and IDs against a multilingual translation catalog",
	Long: `multilan loads translation catalog pages (JSON or YAML) and resolves
free text against them: search, bulk linking, language detection, variable
templates and language switch planning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" && os.Getenv("MULTILAN_CONFIG") == "" {
			if root, err := platform.FindRoot("."); err == nil {
				path = filepath.Join(root, platform.ConfigFile)
			}
		}

		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		cfgFile = ""
		if resolved, _ := config.ResolvePath(path); resolved != "" {
			if _, err := os.Stat(resolved); err == nil {
				cfgFile, _ = filepath.Abs(resolved)
			}
		}

		if catalogPath != "" {
			cfg.Catalog.Path = catalogPath
		}
		if pattern != "" {
			cfg.Catalog.Pattern = pattern
		}

		level := cfg.Log.SlogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{Level: level}

		var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
		if cfg.Log.Format == "json" {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		}
		slog.SetDefault(slog.New(handler))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./multilan.yaml or MULTILAN_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Catalog directory or file")
	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", "", "Glob selecting catalog files below the catalog directory")
}

// catalogExcludes keeps the config file out of catalog discovery.
func catalogExcludes() []string {
	if cfgFile == "" {
		return nil
	}
	return []string{cfgFile}
}

// openService loads the configured catalog.
func openService(opts ...platform.Option) (*catalog.Service, error) {
	all := append(platform.OptionsFromConfig(cfg),
		platform.WithLogger(slog.Default()),
		platform.WithExclude(catalogExcludes()...),
	)
	all = append(all, opts...)
	return platform.New(cfg.Catalog.Path, all...)
}

func mustService(opts ...platform.Option) *catalog.Service {
	svc, err := openService(opts...)
	if err != nil {
		fatal("Error loading catalog", err)
	}
	return svc
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal("Error encoding JSON", err)
	}
}

// readInput decodes JSON from path, or from stdin when path is "-".
func readInput(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
