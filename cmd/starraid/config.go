package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-raid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after applying
--config or the first config file found in ~/.starraid/configs or
./configs. Redirect the output to a file to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
