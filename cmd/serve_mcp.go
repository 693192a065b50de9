package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
	"github.com/KaramelBytes/txmedia-cli/internal/mcpserver"
)

var (
	mcpDelimiter string
	mcpSheet     string
	mcpNoData    bool
)

var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp [file]",
	Short: "Serve the dataset and the speed parser as MCP tools over stdio",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var t *dataset.Table
		if !mcpNoData {
			var err error
			t, err = loadTable(datasetPath(args), mcpDelimiter, mcpSheet)
			if err != nil {
				return err
			}
		}
		s := mcpserver.New(t, mcpserver.Options{
			Compare: compare.Options{Separator: cfg.ScatterSeparator},
			Logger:  &logger,
		})
		return s.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(serveMCPCmd)
	serveMCPCmd.Flags().StringVar(&mcpDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|'")
	serveMCPCmd.Flags().StringVar(&mcpSheet, "sheet", "", "XLSX: sheet name to read")
	serveMCPCmd.Flags().BoolVar(&mcpNoData, "no-data", false, "serve only parse_speed without loading a dataset")
}
