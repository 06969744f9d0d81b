// Package config provides YAML-based game configuration loading and
// difficulty management for the arena variants.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ArenaConfig contains all configuration for one arena variant.
type ArenaConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Coin       CoinConfig       `yaml:"coin"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the world size. The arena starts inset by Padding.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// PlayerConfig defines the player circle.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// CoinConfig defines the coin circle.
type CoinConfig struct {
	Radius float64 `yaml:"radius"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// EnemyConfig defines enemy spawns. Direction bounds are per-axis
// magnitudes; the sign of each component is random.
type EnemyConfig struct {
	Radius   float64 `yaml:"radius"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinDir   float64 `yaml:"min_dir"`
	MaxDir   float64 `yaml:"max_dir"`
}

// ProjectileConfig defines player shots.
type ProjectileConfig struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
}

// GameplayConfig defines scoring, ammo and the shrink budget.
type GameplayConfig struct {
	ShrinkPerHit float64 `yaml:"shrink_per_hit"` // Budget added per enemy hit or expired shot
	ShrinkStep   float64 `yaml:"shrink_step"`    // Budget spent per tick
	StartAmmo    int     `yaml:"start_ammo"`
	AmmoPerCoin  int     `yaml:"ammo_per_coin"`
	MaxAmmo      int     `yaml:"max_ammo"` // 0 = unlimited
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// Validate checks that the config describes a playable arena.
func (c ArenaConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.Padding >= 0, "world padding must be non-negative, got %v", c.World.Padding)
	check(c.World.Width > 2*c.World.Padding && c.World.Height > 2*c.World.Padding,
		"world padding %v leaves no arena", c.World.Padding)

	check(c.Player.Radius > 0, "player radius must be positive, got %v", c.Player.Radius)
	check(c.Coin.Radius > 0, "coin radius must be positive, got %v", c.Coin.Radius)
	check(c.Enemy.Radius > 0, "enemy radius must be positive, got %v", c.Enemy.Radius)
	check(c.Projectile.Radius > 0, "projectile radius must be positive, got %v", c.Projectile.Radius)

	check(c.Player.Speed >= 0, "player speed must be non-negative, got %v", c.Player.Speed)
	check(c.Projectile.Speed >= 0, "projectile speed must be non-negative, got %v", c.Projectile.Speed)
	check(c.Enemy.MinSpeed >= 0 && c.Enemy.MinSpeed <= c.Enemy.MaxSpeed,
		"enemy speed range [%v, %v] is invalid", c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	check(c.Enemy.MinDir >= 0 && c.Enemy.MinDir <= c.Enemy.MaxDir,
		"enemy direction range [%v, %v] is invalid", c.Enemy.MinDir, c.Enemy.MaxDir)

	check(c.Gameplay.ShrinkPerHit >= 0, "shrink_per_hit must be non-negative, got %v", c.Gameplay.ShrinkPerHit)
	check(c.Gameplay.ShrinkStep > 0, "shrink_step must be positive, got %v", c.Gameplay.ShrinkStep)
	check(c.Gameplay.StartAmmo >= 0, "start_ammo must be non-negative, got %d", c.Gameplay.StartAmmo)
	check(c.Gameplay.AmmoPerCoin >= 0, "ammo_per_coin must be non-negative, got %d", c.Gameplay.AmmoPerCoin)
	check(c.Gameplay.MaxAmmo >= 0, "max_ammo must be non-negative, got %d", c.Gameplay.MaxAmmo)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. The empty string means
// "use the config file as is" and returns an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
