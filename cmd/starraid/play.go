package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the chosen frontend.

Controls:
  WASD/Arrows  - Move
  Space        - Fire
  P            - Pause
  Q/Esc        - Quit
  Ctrl+S       - Screenshot (terminal only)

Examples:
  starraid play
  starraid play --frontend window
  starraid play --seed 42 --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend to play in (see 'starraid list')")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'starraid list' to see available frontends", flagFrontend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lib, err := assets.Load(cfg.Assets.Dir)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagFrontend == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	if loaded := lib.Loaded(); len(loaded) > 0 {
		logger.Debug("sprites loaded from disk", "dir", cfg.Assets.Dir, "ids", loaded)
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	return frontend.Run(registry.Session{
		Config: cfg,
		Assets: lib,
		Seed:   resolveSeed(),
		Logger: logger,
	})
}
