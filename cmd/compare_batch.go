package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/utils"
)

var (
	cbDelimiter string
	cbSheet     string
	cbParallel  int
	cbKeepGoing bool
	cbJSON      bool
	cbQuiet     bool
)

// batchSummary is the one-line result for one file of a batch.
type batchSummary struct {
	Path      string   `json:"path"`
	Rows      int      `json:"rows"`
	Encoding  string   `json:"encoding"`
	Modes     []string `json:"modes"`
	Fastest   string   `json:"fastest,omitempty"`
	AvgCost   string   `json:"avg_cost,omitempty"`
	AvgCostUS string   `json:"avg_cost_usd,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func (s batchSummary) String() string {
	if s.Error != "" {
		return fmt.Sprintf("✗ %s: %s", s.Path, s.Error)
	}
	modes := "none"
	if len(s.Modes) > 0 {
		modes = strings.Join(s.Modes, ", ")
	}
	line := fmt.Sprintf("✓ %s: %d rows (%s), modes: %s", s.Path, s.Rows, s.Encoding, modes)
	if s.Fastest != "" {
		line += ", fastest " + s.Fastest
	}
	if s.AvgCost != "" {
		line += ", avg cost " + s.AvgCost
	}
	if s.AvgCostUS != "" {
		line += ", avg USD " + s.AvgCostUS
	}
	return line
}

var compareBatchCmd = &cobra.Command{
	Use:   "compare-batch <files...>",
	Short: "Load several CSV/TSV/XLSX datasets in parallel and summarize each",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := utils.ExpandInputs(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		opt, err := datasetOptions(cbDelimiter, cbSheet)
		if err != nil {
			return err
		}
		limit := cbParallel
		if limit <= 0 {
			limit = cfg.BatchParallelism
		}

		out := cmd.OutOrStdout()
		total := len(files)
		results := make([]batchSummary, total)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(limit)
		for i, path := range files {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				t, err := loadTableWith(path, opt)
				if err != nil {
					if cbKeepGoing {
						results[i] = batchSummary{Path: path, Error: err.Error()}
						return nil
					}
					return err
				}
				d := compare.Build(t, compare.Options{Separator: cfg.ScatterSeparator})
				s := batchSummary{Path: path, Rows: t.Len(), Encoding: t.Encoding()}
				for _, m := range d.Availability.Modes {
					s.Modes = append(s.Modes, string(m))
				}
				if d.Speed != nil && d.Speed.Fastest != nil {
					s.Fastest = d.Speed.FastestLabel()
				}
				if d.Cost != nil {
					if d.Cost.AvgRelative != nil {
						s.AvgCost = d.Cost.AvgRelativeLabel()
					}
					if d.Cost.AvgUSD != nil {
						s.AvgCostUS = d.Cost.AvgUSDLabel()
					}
				}
				results[i] = s
				if !cbQuiet {
					logger.Info().Str("file", filepath.Base(path)).Int("rows", s.Rows).Msgf("[%d/%d] processed", i+1, total)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if cbJSON {
			b, err := utils.PrettyJSON(results)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
		} else {
			for _, s := range results {
				fmt.Fprintln(out, s.String())
			}
		}
		failed := 0
		for _, s := range results {
			if s.Error != "" {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareBatchCmd)
	compareBatchCmd.Flags().StringVar(&cbDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|'")
	compareBatchCmd.Flags().StringVar(&cbSheet, "sheet", "", "XLSX: sheet name to read")
	compareBatchCmd.Flags().IntVar(&cbParallel, "parallel", 0, "files loaded at once (default batch_parallelism from config)")
	compareBatchCmd.Flags().BoolVar(&cbKeepGoing, "keep-going", false, "report failing files and continue with the rest")
	compareBatchCmd.Flags().BoolVar(&cbJSON, "json", false, "print summaries as JSON")
	compareBatchCmd.Flags().BoolVar(&cbQuiet, "quiet", false, "suppress progress logging")
}
