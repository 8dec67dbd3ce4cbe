package config

import (
	"github.com/spf13/cobra"
)

// AddPlotFlags adds input and mode flags to a command.
func (c *Config) AddPlotFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&c.File, "file", "f", c.File, "Input CSV file path")
	flags.StringVarP(&c.Mode, "mode", "m", c.Mode, "Chart mode: rw - read/write; total - total bandwidth")
}

// AddOutputFlags adds chart and export output flags to a command.
func (c *Config) AddOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&c.Output, "output", "o", c.Output, "Chart image output path")
	flags.StringVar(&c.Report, "report", c.Report, "HTML report path (derived from output if empty)")
	flags.BoolVar(&c.NoOpen, "no-open", c.NoOpen, "Do not open the HTML report in a browser")
	flags.StringVar(&c.Export, "export", c.Export, "Export derived series (csv, tsv, jsonl, parquet by extension)")
}
