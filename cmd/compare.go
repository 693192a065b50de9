package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/report"
	"github.com/KaramelBytes/txmedia-cli/internal/utils"
)

var (
	cmpMode       string
	cmpFormat     string
	cmpOutputPath string
	cmpDelimiter  string
	cmpSheet      string
	cmpSeparator  string
)

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Render the comparison views of a dataset as Markdown, JSON or text",
	Long: `Load a CSV/TSV/XLSX dataset and render its comparison views: speed bars, reliability vs
interference groups, coverage, cost analysis and the data overview. The file defaults to
dataset_path from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := cmpMode
		if mode == "" {
			mode = cfg.DefaultMode
		}
		sec, err := report.ParseSection(mode)
		if err != nil {
			return err
		}
		format := cmpFormat
		if format == "" {
			format = cfg.OutputFormat
		}
		f, err := report.ParseFormat(format)
		if err != nil {
			return err
		}

		path := datasetPath(args)
		t, err := loadTable(path, cmpDelimiter, cmpSheet)
		if err != nil {
			return err
		}
		out, err := report.New(t, compare.Options{Separator: separator(cmpSeparator)}, sec).Render(f)
		if err != nil {
			return err
		}

		if cmpOutputPath != "" {
			if err := utils.SafeWriteFile(cmpOutputPath, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s report for %s to %s\n", f, t.Source(), cmpOutputPath)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&cmpMode, "mode", "", "view: all | speed | reliability | coverage | cost | overview (default from config)")
	compareCmd.Flags().StringVar(&cmpFormat, "format", "", "output format: markdown | json | text (default from config)")
	compareCmd.Flags().StringVarP(&cmpOutputPath, "output", "o", "", "write the report to a file instead of stdout")
	compareCmd.Flags().StringVar(&cmpDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|'")
	compareCmd.Flags().StringVar(&cmpSheet, "sheet", "", "XLSX: sheet name to read")
	compareCmd.Flags().StringVar(&cmpSeparator, "separator", "", "separator joining media types that share a scatter point")
}
