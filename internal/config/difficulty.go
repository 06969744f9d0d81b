package config

// DifficultyManager turns score or elapsed ticks into a difficulty level
// and the enemy speed multiplier that goes with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clamp01(cfg.InitialLevel),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1]. It starts at the initial level
// and rises linearly to 1 at Progression.MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var done float64
	switch d.cfg.Progression.Type {
	case "score":
		done = float64(score)
	case "time":
		done = float64(ticks)
	default:
		return d.initialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	progress := clamp01(done / maxAt)
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Multiplier returns the enemy speed factor, from 1 at level 0 up to
// 1+SpeedMultiplier at level 1.
func (d *DifficultyManager) Multiplier(score, ticks int) float64 {
	return 1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
