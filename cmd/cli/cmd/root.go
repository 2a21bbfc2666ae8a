// Package cmd provides the CLI commands for mouldflow.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	seedcatalog "mouldflow/adapters/catalog"
	"mouldflow/core/catalog"
	"mouldflow/internal/config"
	"mouldflow/internal/logging"
)

var (
	cfgFile    string
	catalogDir string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mouldflow",
	Short: "Injection moulding feasibility analysis",
	Long: `mouldflow estimates the mouldability of a plastic part before any
tooling is cut.

Given part geometry (an STL file or manual dimensions), a material and a
process configuration, it computes clamp tonnage, fill time, injection
pressure, cycle time, gate and runner sizing, flags feasibility risks
and recommends machines from the press catalog.

Examples:
  mouldflow analyze --stl part.stl --material abs-general-purpose
  mouldflow analyze --length 150 --width 80 --height 30 --thickness 2.5 \
      --material pp-homopolymer --cavities 4
  mouldflow materials
  mouldflow machines`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mouldflow/config.json)")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog", "", "directory of .hcl catalog files (overrides the built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(machinesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog resolves the catalog for the current invocation: an
// explicit --catalog dir, the configured dir, or the built-in seed.
func loadCatalog() (*catalog.Catalog, error) {
	dir := catalogDir
	if dir == "" {
		dir = config.Get().Catalog.Dir
	}
	if dir != "" {
		return seedcatalog.LoadDir(dir)
	}
	return seedcatalog.LoadDefault()
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mouldflow version 1.0.0")
	},
}
