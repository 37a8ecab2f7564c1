package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SamirAliWebDev/Todo/internal/config"
)

var configReset bool

// configCmd shows or resets the configuration file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long:  `Print the configuration file path and the active settings, or reset them to defaults with --reset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		if configReset {
			if err := config.Save(config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to reset config: %w", err)
			}
			fmt.Printf("Config reset to defaults: %s\n", path)
			return nil
		}

		fmt.Printf("Config file:    %s\n", path)
		fmt.Printf("Name:           %s\n", appConfig.UserName)
		fmt.Printf("Notifications:  %v\n", appConfig.Notifications.Enabled)
		fmt.Printf("MCP:            %v\n", appConfig.MCP.Enabled)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configReset, "reset", false, "Reset the configuration to defaults")
}
