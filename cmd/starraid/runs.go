package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/platform/tui"
	"github.com/vovakirdan/star-raid/internal/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `Opens a table of recorded runs. Select a run and press enter to
verify it, or x to delete it.`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lib, err := assets.Load(cfg.Assets.Dir)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunRuns(store, func(rec storage.RunRecord) error {
		return verifyRecord(cfg, lib, rec)
	}, width, height)
}
