package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/replay"
	"github.com/vovakirdan/star-raid/internal/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Replay a recorded run and check its hashes",
	Long: `Re-runs a recorded simulation with the same seed and frame profile
and compares every checkpoint hash. A mismatch means the simulation no
longer behaves as it did when the run was recorded, or the configuration
differs.

Examples:
  starraid verify 3`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

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

	rec, err := store.Run(id)
	if err != nil {
		return err
	}

	if err := verifyRecord(cfg, lib, *rec); err != nil {
		return err
	}
	fmt.Printf("Run %d verified: %d ticks, %d checkpoints, final hash %016x\n",
		rec.ID, rec.Ticks, len(rec.Checkpoints), rec.FinalHash)
	return nil
}

// verifyRecord replays rec and compares it against the stored hashes.
func verifyRecord(cfg config.ShooterConfig, lib *assets.Library, rec storage.RunRecord) error {
	opts, want := replayInputs(rec)
	return replay.Verify(cfg, lib.Sprites(), opts, want)
}
