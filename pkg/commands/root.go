// Package commands provides the CLI for the bandwidth visualizer.
package commands

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pcmviz/pkg/bandwidth"
	"pcmviz/pkg/config"
	"pcmviz/pkg/exporting"
	"pcmviz/pkg/graphing"
)

// Cfg is the shared configuration instance.
var Cfg = config.New()

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pcmviz",
		Short: "Visualize pcm-memory.x CSV bandwidth data",
		Long: `pcmviz reads a pcm-memory.x CSV export and renders a time-aligned
line chart of per-socket memory bandwidth across the DRAM, PMM and CXL
tiers.

The chart is always saved as an image; an interactive HTML report is
written alongside it and opened in a browser unless --no-open is set.

Examples:
  pcmviz -f pcm-memory.csv
  pcmviz -f pcm-memory.csv -m total -o run42.png
  pcmviz -f pcm-memory.csv --export series.parquet --no-open`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlot,
	}

	Cfg.AddPlotFlags(root)
	Cfg.AddOutputFlags(root)
	_ = root.MarkFlagRequired("file")

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	if err := Cfg.Validate(); err != nil {
		return err
	}
	mode, err := graphing.ParseMode(Cfg.Mode)
	if err != nil {
		return err
	}

	table, err := bandwidth.ParseFile(Cfg.File)
	if err != nil {
		return err
	}

	sockets := table.Sockets()
	fmt.Printf("Sockets detected: %s\n", strings.Join(sockets, ", "))
	fmt.Printf("Mode: %s\n", mode)

	data := bandwidth.Extract(table)
	lines := graphing.BuildLines(data, sockets, mode)

	if err := graphing.RenderPNG(lines, table.Index, Cfg.Output); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	fmt.Printf("Chart saved: %s\n", Cfg.Output)

	// The image is on disk at this point; report and export problems
	// should not take it down with them.
	writeReport(table, lines)

	if Cfg.Export != "" {
		columns, records := exporting.BuildRecords(table.Index, sockets, data)
		if err := exporting.SaveRecords(Cfg.Export, columns, records); err != nil {
			log.Printf("Warning: failed to export series: %v", err)
		} else {
			fmt.Printf("Series exported: %s\n", Cfg.Export)
		}
	}

	return nil
}

func writeReport(table *bandwidth.Table, lines []graphing.Line) {
	sum := graphing.Summary{
		SessionID: uuid.New().String(),
		InputFile: Cfg.File,
		Mode:      graphing.Mode(Cfg.Mode),
		Sockets:   table.Sockets(),
		Rows:      table.Len(),
		Start:     table.Index[0],
		End:       table.Index[table.Len()-1],
	}

	report := Cfg.ReportPath()
	if err := graphing.WriteHTMLReport(report, sum, lines, table.Index); err != nil {
		log.Printf("Warning: failed to write HTML report: %v", err)
		return
	}
	fmt.Printf("Report written: %s\n", report)

	if Cfg.NoOpen {
		return
	}
	if err := graphing.OpenInBrowser(report); err != nil {
		log.Printf("Warning: failed to open report: %v", err)
	}
}
