package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/replay"
	"github.com/vovakirdan/star-raid/internal/storage"
)

// loadConfig resolves the configuration from --config or the search path.
func loadConfig() (config.ShooterConfig, error) {
	return config.Load(flagConfig)
}

// resolveSeed returns --seed, or a time based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates the process logger. When toFile is set and no --log
// was given, logs go to the default file so they do not corrupt a
// full-screen terminal UI.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	path := flagLog
	if path == "" && toFile {
		path = filepath.Join(config.DataDir(), "starraid.log")
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- user supplied log path
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "starraid",
	})
	return logger, closeFn, nil
}

// openStore opens the run journal at --db, or runs.db in the data directory.
func openStore() (*storage.Store, error) {
	path := flagDBPath
	if path == "" {
		path = filepath.Join(config.DataDir(), "runs.db")
	}
	return storage.Open(path)
}

// runRecord converts a headless result into a journal row.
func runRecord(opts replay.Options, res replay.Result) storage.RunRecord {
	rec := storage.RunRecord{
		Seed:            res.Seed,
		Ticks:           res.Ticks,
		CheckpointEvery: opts.CheckpointEvery,
		MaxFrameMS:      opts.MaxFrameMS,
		FinalHash:       res.FinalHash,
		Kills:           res.Stats.Kills,
		Deaths:          res.Stats.Deaths,
		Resets:          res.Stats.Resets,
	}
	for _, cp := range res.Checkpoints {
		rec.Checkpoints = append(rec.Checkpoints, storage.Checkpoint{Tick: cp.Tick, Hash: cp.Hash})
	}
	return rec
}

// replayInputs converts a journal row back into the options and expected
// result of the run it describes.
func replayInputs(rec storage.RunRecord) (replay.Options, replay.Result) {
	opts := replay.Options{
		Seed:            rec.Seed,
		Ticks:           int(rec.Ticks), //#nosec G115 -- tick counts fit in int
		CheckpointEvery: rec.CheckpointEvery,
		MaxFrameMS:      rec.MaxFrameMS,
	}
	want := replay.Result{
		Seed:      rec.Seed,
		Ticks:     rec.Ticks,
		FinalHash: rec.FinalHash,
	}
	for _, cp := range rec.Checkpoints {
		want.Checkpoints = append(want.Checkpoints, replay.Checkpoint{Tick: cp.Tick, Hash: cp.Hash})
	}
	return opts, want
}
