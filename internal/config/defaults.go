package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

//go:embed defaults/inventorium.yaml
var defaultInventoriumYAML []byte

// embedded returns the built-in YAML for a variant, or nil.
func embedded(id string) []byte {
	switch id {
	case "arena":
		return defaultArenaYAML
	case "inventorium":
		return defaultInventoriumYAML
	default:
		return nil
	}
}

// DefaultArenaConfig returns the classic shrinking-arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: WorldConfig{
			Width:   1200,
			Height:  800,
			Padding: 20,
		},
		Player: PlayerConfig{
			Radius: 8,
			Speed:  300,
			StartX: 30,
			StartY: 400,
		},
		Coin: CoinConfig{
			Radius: 6,
			StartX: 1170,
			StartY: 400,
		},
		Enemy: EnemyConfig{
			Radius:   8,
			MinSpeed: 250,
			MaxSpeed: 400,
			MinDir:   0.2,
			MaxDir:   0.5,
		},
		Projectile: ProjectileConfig{
			Radius:       3,
			Speed:        500,
			MuzzleOffset: 20,
		},
		Gameplay: GameplayConfig{
			ShrinkPerHit: 20,
			ShrinkStep:   1,
			StartAmmo:    0,
			AmmoPerCoin:  1,
			MaxAmmo:      0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultInventoriumConfig returns the ammo-economy variant: a smaller
// world, a starting clip and a capped magazine.
func DefaultInventoriumConfig() ArenaConfig {
	cfg := DefaultArenaConfig()
	cfg.World = WorldConfig{Width: 900, Height: 600, Padding: 20}
	cfg.Player.StartY = 300
	cfg.Coin.StartX = 870
	cfg.Coin.StartY = 300
	cfg.Gameplay.StartAmmo = 3
	cfg.Gameplay.AmmoPerCoin = 2
	cfg.Gameplay.MaxAmmo = 6
	cfg.Difficulty.Progression.MaxAt = 30
	return cfg
}

// Default returns the hardcoded config for a variant. Unknown ids get
// the classic arena.
func Default(id string) ArenaConfig {
	if id == "inventorium" {
		return DefaultInventoriumConfig()
	}
	return DefaultArenaConfig()
}
