package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/dashboard"
)

var (
	dbDelimiter string
	dbSheet     string
	dbSeparator string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [file]",
	Short: "Open the interactive terminal dashboard",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(datasetPath(args), dbDelimiter, dbSheet)
		if err != nil {
			return err
		}
		return dashboard.Run(compare.Build(t, compare.Options{Separator: separator(dbSeparator)}))
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dbDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|'")
	dashboardCmd.Flags().StringVar(&dbSheet, "sheet", "", "XLSX: sheet name to read")
	dashboardCmd.Flags().StringVar(&dbSeparator, "separator", "", "separator joining media types that share a scatter point")
}
