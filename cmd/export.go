package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"timelog/config"
	"timelog/output"
	"timelog/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the aggregated report to CSV, Excel, or SQLite",
	Long: `Compute the report from the timestamp log and write it to a file instead of
printing it.

Output format can be selected explicitly via --format or inferred from the
--output extension. The sqlite format writes a single report snapshot,
replacing whatever snapshot the database file held before.`,
	Example: `
  # Export the report to CSV
  timelog export --output ./report.csv

  # Export the report to Excel
  timelog export --output ./report.xlsx

  # Export a snapshot into a SQLite file
  timelog export --format sqlite --output ./report.db

  # Export an explicit log file, forcing the format
  timelog export worklog.txt --format excel --output ./report.out
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		outputPath := exportOutput
		if strings.TrimSpace(outputPath) == "" {
			outputPath = cfg.Export.Output
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			if strings.TrimSpace(exportOutput) != "" {
				format = detectExportFormat(outputPath)
			} else {
				format = cfg.Export.Format
			}
		}

		report, path, err := buildReport(args)
		if err != nil {
			return err
		}

		switch output.NormalizeFormat(format) {
		case "sqlite":
			store, storeErr := storage.OpenSQLite(outputPath)
			if storeErr != nil {
				return storeErr
			}
			defer store.Close()
			if err := store.SaveReport(report); err != nil {
				return err
			}
		default:
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(outputPath, report); err != nil {
				return err
			}
		}

		fmt.Printf("Export completed. Input: %s, Format: %s, File: %s\n", path, output.NormalizeFormat(format), outputPath)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	case "db", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel|sqlite (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default from config: export.output)")
}
