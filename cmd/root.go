package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timelog/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// Run bare (optionally with a log file path) it prints the report, so the
// plain `timelog [file]` invocation works without naming a subcommand.
var rootCmd = &cobra.Command{
	Use:   "timelog [file]",
	Short: "Aggregate a plain-text timestamp log into hour statistics.",
	Long: `
Read a text file containing one ISO-8601 timestamp per line, normalize each
timestamp onto a 15-minute grid, and print hours spent aggregated by month,
week, day and weekday, plus the longest continuous session.

Each line must look like 2020-01-01T09:00:00+00:00 (the offset may also be
written without the colon, e.g. +0000).
`,
	Example: `
  # Report on ./log.txt (or the configured input path)
  timelog

  # Report on an explicit file
  timelog worklog.txt

  # Export the report to Excel
  timelog export --output ./report.xlsx

  # Create configuration file
  timelog config create
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.timelog.yaml, then ./.timelog.yaml)")
	rootCmd.SilenceUsage = true
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".timelog" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".timelog")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// The config file is optional; defaults cover every key.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Could not read config file:", err)
		}
	}
}
