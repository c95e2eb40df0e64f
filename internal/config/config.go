// Package config provides YAML-based configuration loading for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunable parameters of the simulation.
type ShooterConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Timing    TimingConfig    `yaml:"timing"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Effects   EffectsConfig   `yaml:"effects"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// ScreenConfig defines the logical playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the fixed simulation time step.
type TimingConfig struct {
	StepMS int `yaml:"step_ms"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Health      int     `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	Reload      int     `yaml:"reload"`
	BulletSpeed float64 `yaml:"bullet_speed"`
}

// EnemyConfig defines enemy spawning and firing.
type EnemyConfig struct {
	SpawnMin         int `yaml:"spawn_min"`
	SpawnRange       int `yaml:"spawn_range"`
	SpeedMin         int `yaml:"speed_min"`
	SpeedRange       int `yaml:"speed_range"`
	Health           int `yaml:"health"`
	Reload           int `yaml:"reload"`
	BulletBoostMin   int `yaml:"bullet_boost_min"`
	BulletBoostRange int `yaml:"bullet_boost_range"`
}

// EffectsConfig defines the death burst.
type EffectsConfig struct {
	ExplosionCount  int `yaml:"explosion_count"`
	ExplosionSpread int `yaml:"explosion_spread"`
	DebrisGrid      int `yaml:"debris_grid"`
}

// StarfieldConfig defines the background decoration.
type StarfieldConfig struct {
	Stars int `yaml:"stars"`
}

// AssetsConfig locates sprite images.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// TickRate returns the number of simulation ticks per second (1000 / step).
func (c ShooterConfig) TickRate() int {
	if c.Timing.StepMS <= 0 {
		return 0
	}
	return 1000 / c.Timing.StepMS
}

// Validate checks that the configuration describes a playable simulation.
func (c ShooterConfig) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Timing.StepMS <= 0 || c.Timing.StepMS > 1000 {
		errs = append(errs, fmt.Errorf("timing.step_ms %d must be in (0, 1000]", c.Timing.StepMS))
	}
	if c.Player.Health <= 0 {
		errs = append(errs, errors.New("player.health must be positive"))
	}
	if c.Enemy.Health <= 0 {
		errs = append(errs, errors.New("enemy.health must be positive"))
	}
	if c.Enemy.SpawnRange <= 0 || c.Enemy.SpeedRange <= 0 || c.Enemy.BulletBoostRange <= 0 {
		errs = append(errs, errors.New("enemy ranges must be positive"))
	}
	if c.Effects.ExplosionSpread <= 0 || c.Effects.DebrisGrid <= 0 {
		errs = append(errs, errors.New("effects spread and debris grid must be positive"))
	}
	if c.Starfield.Stars < 0 {
		errs = append(errs, errors.New("starfield.stars must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
