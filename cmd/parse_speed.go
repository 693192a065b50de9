package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/speed"
	"github.com/KaramelBytes/txmedia-cli/internal/utils"
)

var (
	psExplain bool
	psJSON    bool
)

var parseSpeedCmd = &cobra.Command{
	Use:   "parse-speed <text>...",
	Short: "Normalize free-text speeds (ranges, units, known typos) to Mbps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if psJSON {
			results := make([]speed.Result, len(args))
			for i, a := range args {
				results[i] = speed.Explain(a)
			}
			b, err := utils.PrettyJSON(results)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		for _, a := range args {
			r := speed.Explain(a)
			val := "absent"
			if r.Mbps != nil {
				val = compare.FormatNumber(r.Mbps) + " Mbps"
			}
			fmt.Fprintf(out, "%s\t%s\n", a, val)
			if psExplain {
				rule := string(r.Rule)
				if rule == "" {
					rule = "none"
				}
				fmt.Fprintf(out, "  cleaned: %s\n  rule: %s\n", r.Cleaned, rule)
				if r.Corrected {
					fmt.Fprintln(out, "  corrected: known malformed literal")
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseSpeedCmd)
	parseSpeedCmd.Flags().BoolVar(&psExplain, "explain", false, "show the cleaned text and the rule that produced the value")
	parseSpeedCmd.Flags().BoolVar(&psJSON, "json", false, "print results as JSON")
}
