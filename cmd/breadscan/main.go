// Package main provides the CLI entry point for breadscan.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"breadscan/pkg/breadscan"
	"breadscan/pkg/breadscan/models"
	"breadscan/pkg/breadscan/output"
)

var (
	fromStr    string
	toStr      string
	maxRows    int
	maxCols    int
	csvDir     string
	xlsxPath   string
	outputPath string
	pretty     bool
	configPath string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "breadscan [workbook.xlsx]",
		Short: "Aggregate brought/returned bread quantities from delivery worksheets",
		Long: `breadscan scans every DD.MM.YYYY sheet of a workbook within a date
range, detects delivery tables by their header labels, and totals brought
and returned quantities per store and per delivery driver.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&fromStr, "from", "", "Start of the date range (DD.MM.YYYY)")
	rootCmd.Flags().StringVar(&toStr, "to", "", "End of the date range (DD.MM.YYYY)")
	rootCmd.Flags().IntVar(&maxRows, "max-rows", 0, "Scan window height (default 320)")
	rootCmd.Flags().IntVar(&maxCols, "max-cols", 0, "Scan window width (default 25)")
	rootCmd.Flags().StringVar(&csvDir, "csv-dir", "", "Directory for CSV summary export")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Path for XLSX report export")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "JSON report file path (default: text tables on stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output to stdout")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file path")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress progress logging")
	_ = rootCmd.MarkFlagRequired("from")
	_ = rootCmd.MarkFlagRequired("to")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	// Flags override the config file and environment.
	if maxRows > 0 {
		cfg.MaxRows = maxRows
	}
	if maxCols > 0 {
		cfg.MaxCols = maxCols
	}
	if csvDir != "" {
		cfg.CSVDir = csvDir
	}
	if xlsxPath != "" {
		cfg.XLSXPath = xlsxPath
	}

	from, err := time.Parse(models.DateLayout, fromStr)
	if err != nil {
		return fmt.Errorf("invalid --from date %q (want DD.MM.YYYY)", fromStr)
	}
	to, err := time.Parse(models.DateLayout, toStr)
	if err != nil {
		return fmt.Errorf("invalid --to date %q (want DD.MM.YYYY)", toStr)
	}
	if to.Before(from) {
		return fmt.Errorf("end date %s is before start date %s", toStr, fromStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := breadscan.DefaultOptions()
	opts.From = from
	opts.To = to
	opts.MaxRows = cfg.MaxRows
	opts.MaxCols = cfg.MaxCols
	opts.Labels = cfg.labels()
	if !quiet {
		opts.OnLog = func(msg string) {
			logger.Info(msg)
		}
		opts.OnProgress = func(done, total int) {
			logger.Info("sheet finished", slog.Int("done", done), slog.Int("total", total))
		}
	}

	res, err := breadscan.Scan(inputPath, opts)
	if err != nil {
		return err
	}
	logger.Info("scan complete",
		slog.String("scan_id", res.Meta.ScanID.String()),
		slog.Int("sheets", res.Meta.SheetsScanned),
		slog.Int("stores", len(res.Stores)),
		slog.Int("drivers", len(res.Drivers)))

	if outputPath != "" || pretty {
		data, err := output.ToJSON(res, pretty)
		if err != nil {
			return fmt.Errorf("serialize result: %w", err)
		}
		if outputPath != "" {
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		} else {
			fmt.Println(string(data))
		}
	} else {
		printTotals(os.Stdout, "Stores", res.Stores)
		printTotals(os.Stdout, "Drivers", res.Drivers)
	}

	if cfg.CSVDir != "" {
		storesPath, driversPath, err := output.ExportCSV(res, cfg.CSVDir)
		if err != nil {
			return err
		}
		logger.Info("CSV saved",
			slog.String("stores", storesPath),
			slog.String("drivers", driversPath))
	}

	if cfg.XLSXPath != "" {
		if err := output.ExportXLSX(res, cfg.XLSXPath); err != nil {
			return err
		}
		logger.Info("XLSX saved", slog.String("path", cfg.XLSXPath))
	}

	return nil
}

func printTotals(w io.Writer, title string, m models.TotalsMap) {
	fmt.Fprintf(w, "%s\n", title)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tBrought\tReturned\tRate %")
	for _, name := range m.Names() {
		t := m[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			name, output.FormatQuantity(t.Brought), output.FormatQuantity(t.Returned), output.FormatRate(t.Rate()))
	}
	tw.Flush()

	s := models.Summarize(m)
	fmt.Fprintf(w, "%d entries, brought %s, returned %s, mean rate %.2f%%, median %.2f%%\n\n",
		s.Entities, output.FormatQuantity(s.Brought), output.FormatQuantity(s.Returned), s.MeanRate, s.MedianRate)
}
