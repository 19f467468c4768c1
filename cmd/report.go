package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"timelog/config"
	"timelog/importer"
	"timelog/internal/timeutil"
	"timelog/output"
	"timelog/stats"
	"timelog/timelog"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Print the aggregated hours report for a timestamp log.",
	Long: `Read the timestamp log, quantize every entry onto the 15-minute grid, and
print the aggregated statistics: Months, Weeks, Days, DaysOfWeek, and the
longest continuous session.

The file argument overrides the configured input path (default: log.txt).`,
	Example: `
  # Report on the configured input path
  timelog report

  # Report on an explicit file
  timelog report worklog.txt
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args)
	},
}

func runReport(args []string) error {
	report, _, err := buildReport(args)
	if err != nil {
		return err
	}
	return output.RenderText(os.Stdout, report)
}

// buildReport runs the whole pipeline and returns the computed report along
// with the resolved input path.
func buildReport(args []string) (*stats.Report, string, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, "", err
	}

	path := cfg.Input.Path
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		path = args[0]
	}

	result, err := importer.Run(path, timelog.DefaultResolution)
	if err != nil {
		return nil, "", err
	}

	report := stats.Build(result.Periods, timelog.DefaultResolution, timeutil.Today())
	return report, path, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
