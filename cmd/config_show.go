package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timelog/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  timelog config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("input.path: %s\n", cfg.Input.Path)
		fmt.Printf("export.format: %s\n", cfg.Export.Format)
		fmt.Printf("export.output: %s\n", cfg.Export.Output)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
