package cmd

import (
	"fmt"

	cfgpkg "github.com/KaramelBytes/txmedia-cli/internal/config"
	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
)

// datasetPath returns the file argument, or the configured dataset when none is given.
func datasetPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.DatasetPath
}

// datasetOptions merges per-command flags over the loaded config.
func datasetOptions(delimiter, sheet string) (dataset.Options, error) {
	if delimiter == "" {
		delimiter = cfg.Delimiter
	}
	delim, err := cfgpkg.ParseDelimiter(delimiter)
	if err != nil {
		return dataset.Options{}, err
	}
	encs, err := cfg.ResolveEncodings()
	if err != nil {
		return dataset.Options{}, err
	}
	if sheet == "" {
		sheet = cfg.Sheet
	}
	return dataset.Options{Delimiter: delim, Sheet: sheet, Encodings: encs, Logger: &logger}, nil
}

func loadTable(path, delimiter, sheet string) (*dataset.Table, error) {
	opt, err := datasetOptions(delimiter, sheet)
	if err != nil {
		return nil, err
	}
	return loadTableWith(path, opt)
}

func loadTableWith(path string, opt dataset.Options) (*dataset.Table, error) {
	t, err := dataset.Load(path, opt)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// separator returns the flag value or the configured scatter separator.
func separator(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.ScatterSeparator
}
