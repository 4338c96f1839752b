package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"breadscan/pkg/breadscan"
	"breadscan/pkg/breadscan/parser"
)

// fileConfig is the optional YAML config file. BREADSCAN_* environment
// variables override the file; command-line flags override both.
type fileConfig struct {
	MaxRows       int    `yaml:"max_rows" envconfig:"MAX_ROWS"`
	MaxCols       int    `yaml:"max_cols" envconfig:"MAX_COLS"`
	AnchorLabel   string `yaml:"anchor_label" envconfig:"ANCHOR_LABEL"`
	BroughtLabel  string `yaml:"brought_label" envconfig:"BROUGHT_LABEL"`
	ReturnedLabel string `yaml:"returned_label" envconfig:"RETURNED_LABEL"`
	CSVDir        string `yaml:"csv_dir" envconfig:"CSV_DIR"`
	XLSXPath      string `yaml:"xlsx_path" envconfig:"XLSX_PATH"`
}

func (c fileConfig) labels() parser.Labels {
	return parser.Labels{
		Anchor:   c.AnchorLabel,
		Brought:  c.BroughtLabel,
		Returned: c.ReturnedLabel,
	}
}

// loadConfig layers defaults, the YAML file when given, and BREADSCAN_*
// environment variables, in that order.
func loadConfig(path string) (fileConfig, error) {
	labels := parser.DefaultLabels()
	cfg := fileConfig{
		MaxRows:       breadscan.DefaultMaxRows,
		MaxCols:       breadscan.DefaultMaxCols,
		AnchorLabel:   labels.Anchor,
		BroughtLabel:  labels.Brought,
		ReturnedLabel: labels.Returned,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("breadscan", &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	return cfg, nil
}
