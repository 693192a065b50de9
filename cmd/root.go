package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/txmedia-cli/internal/config"
	"github.com/KaramelBytes/txmedia-cli/internal/logging"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// logger writes diagnostics to stderr; user output goes to stdout.
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "txmedia",
	Short: "Compare transmission media from a CSV/XLSX dataset",
	Long: `txmedia loads a transmission media comparison table (type, speed, cost, reliability,
interference, coverage), normalizes its columns and free-text speeds to Mbps, and renders the
comparison as a report, an interactive terminal dashboard or MCP tools.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup() },
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.txmedia/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// setup loads configuration and builds the logger before every command.
func setup() error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	l, err := logging.New(os.Stderr, level)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug().Str("config", cfgFile).Str("dataset_path", cfg.DatasetPath).Msg("config loaded")
	return nil
}
