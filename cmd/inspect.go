package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
	"github.com/KaramelBytes/txmedia-cli/internal/schema"
	"github.com/KaramelBytes/txmedia-cli/internal/utils"
)

var (
	insDelimiter string
	insSheet     string
	insJSON      bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show how a dataset was read: encoding, column mapping and parsed speeds",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(datasetPath(args), insDelimiter, insSheet)
		if err != nil {
			return err
		}
		if insJSON {
			b, err := utils.PrettyJSON(t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), describeTable(t))
		return nil
	},
}

func describeTable(t *dataset.Table) string {
	var b strings.Builder
	b.WriteString("[DATASET]\n")
	b.WriteString(fmt.Sprintf("File: %s\nEncoding: %s\nRows: %d\nLoad ID: %s\n", t.Source(), t.Encoding(), t.Len(), t.ID()))

	b.WriteString("\n[COLUMN MAPPING]\n")
	for _, c := range t.Mapping().Columns {
		how := "kept"
		switch c.Source {
		case schema.SourceKeyword:
			how = "keyword"
		case schema.SourcePosition:
			how = "position"
		}
		raw := c.Raw
		if strings.TrimSpace(raw) == "" {
			raw = "(unnamed)"
		}
		b.WriteString(fmt.Sprintf("- %q → %s (%s)\n", raw, c.Name, how))
	}
	var missing []string
	for _, name := range schema.Semantic {
		if !t.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		b.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(missing, ", ")))
	}

	if t.Has(schema.Speed) {
		b.WriteString("\n[SPEEDS]\n")
		for _, r := range t.Records() {
			mbps := compare.FormatNumber(r.SpeedMbps)
			if mbps == "" {
				mbps = "absent"
			} else {
				mbps += " Mbps"
			}
			b.WriteString(fmt.Sprintf("- %s: %q → %s\n", r.MediaType, r.SpeedRaw, mbps))
		}
	}

	a := compare.Available(t)
	b.WriteString("\n[MODES]\n")
	if a.NoData() {
		b.WriteString(a.Describe() + "\n")
	} else {
		for _, m := range a.Modes {
			b.WriteString("- " + string(m) + "\n")
		}
	}
	if a.Cost {
		b.WriteString("- " + string(compare.AppCost) + "\n")
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&insDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|'")
	inspectCmd.Flags().StringVar(&insSheet, "sheet", "", "XLSX: sheet name to read")
	inspectCmd.Flags().BoolVar(&insJSON, "json", false, "print the canonical table as JSON")
}
