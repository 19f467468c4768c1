package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage timelog configuration file values.",
	Long: `Create, edit and display the timelog configuration file.

The configuration stores:
- input.path (timestamp log to read, default log.txt)
- export.format / export.output (defaults for the export command)`,
	Example: `
  # Create default config in $HOME/.timelog.yaml
  timelog config create

  # Show active config and source file
  timelog config show

  # Open active config in editor (creates example if missing)
  timelog config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
