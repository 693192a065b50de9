package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DatasetPath string   `mapstructure:"dataset_path" yaml:"dataset_path" validate:"required"`
	Delimiter   string   `mapstructure:"delimiter" yaml:"delimiter" validate:"delimiter"`
	Sheet       string   `mapstructure:"sheet" yaml:"sheet"`
	Encodings   []string `mapstructure:"encodings" yaml:"encodings" validate:"min=1,dive,encoding"`

	// Output
	OutputFormat     string `mapstructure:"output_format" yaml:"output_format" validate:"oneof=markdown json text"`
	DefaultMode      string `mapstructure:"default_mode" yaml:"default_mode" validate:"oneof=all speed reliability coverage cost overview"`
	ScatterSeparator string `mapstructure:"scatter_separator" yaml:"scatter_separator" validate:"required"`

	BatchParallelism int    `mapstructure:"batch_parallelism" yaml:"batch_parallelism" validate:"min=1,max=64"`
	LogLevel         string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Keys lists the settable keys in display order.
var Keys = []string{
	"dataset_path", "delimiter", "sheet", "encodings", "output_format",
	"default_mode", "scatter_separator", "batch_parallelism", "log_level",
}

// Dir returns ~/.txmedia.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".txmedia"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.txmedia/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	if err := Validate(c); err != nil {
		return err
	}
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults, then validates it.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TXMEDIA")
	v.AutomaticEnv()

	v.SetDefault("dataset_path", "Transmission_Media_Comparison.csv")
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet", "")
	v.SetDefault("encodings", []string{"utf-8-sig", "latin-1"})
	v.SetDefault("output_format", "markdown")
	v.SetDefault("default_mode", "all")
	v.SetDefault("scatter_separator", ", ")
	v.SetDefault("batch_parallelism", 4)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Set assigns one key from its string form. The result is not validated; call Validate.
func (c *Global) Set(key, val string) error {
	switch key {
	case "dataset_path":
		c.DatasetPath = val
	case "delimiter":
		c.Delimiter = val
	case "sheet":
		c.Sheet = val
	case "encodings":
		var encs []string
		for _, e := range strings.Split(val, ",") {
			if e = strings.TrimSpace(e); e != "" {
				encs = append(encs, e)
			}
		}
		c.Encodings = encs
	case "output_format":
		c.OutputFormat = strings.ToLower(val)
	case "default_mode":
		c.DefaultMode = strings.ToLower(val)
	case "scatter_separator":
		c.ScatterSeparator = val
	case "batch_parallelism":
		i, err := cast.ToIntE(val)
		if err != nil {
			return fmt.Errorf("invalid int for batch_parallelism: %v", val)
		}
		c.BatchParallelism = i
	case "log_level":
		c.LogLevel = strings.ToLower(val)
	default:
		return fmt.Errorf("unknown key: %s (want one of %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns the display form of one key.
func (c *Global) Get(key string) (string, error) {
	switch key {
	case "dataset_path":
		return c.DatasetPath, nil
	case "delimiter":
		return c.Delimiter, nil
	case "sheet":
		return c.Sheet, nil
	case "encodings":
		return strings.Join(c.Encodings, ","), nil
	case "output_format":
		return c.OutputFormat, nil
	case "default_mode":
		return c.DefaultMode, nil
	case "scatter_separator":
		return fmt.Sprintf("%q", c.ScatterSeparator), nil
	case "batch_parallelism":
		return cast.ToString(c.BatchParallelism), nil
	case "log_level":
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("unknown key: %s", key)
}

// ParseDelimiter maps a delimiter setting onto a rune. Empty means auto-detect (0).
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", "tab", `\t`:
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	}
	return 0, fmt.Errorf("unsupported delimiter: %s (use ',' | ';' | 'tab' | '|')", s)
}
