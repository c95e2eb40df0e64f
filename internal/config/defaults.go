package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Timing: TimingConfig{
			StepMS: 16,
		},
		Player: PlayerConfig{
			StartX:      100,
			StartY:      100,
			Health:      3,
			Speed:       4.0,
			Reload:      8,
			BulletSpeed: 8.0,
		},
		Enemy: EnemyConfig{
			SpawnMin:         30,
			SpawnRange:       60,
			SpeedMin:         2,
			SpeedRange:       4,
			Health:           1,
			Reload:           100,
			BulletBoostMin:   2,
			BulletBoostRange: 7,
		},
		Effects: EffectsConfig{
			ExplosionCount:  32,
			ExplosionSpread: 32,
			DebrisGrid:      2,
		},
		Starfield: StarfieldConfig{
			Stars: 512,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
