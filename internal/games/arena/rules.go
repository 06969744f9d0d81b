package arena

// Rules holds every tunable of the simulation. Config files map onto it;
// DefaultRules is the classic 1200x800 arena.
type Rules struct {
	WorldW, WorldH float64 // Full world size; the arena starts inset by Padding
	Padding        float64

	ShrinkPerHit float64 // Budget added per enemy hit or expired projectile
	ShrinkStep   float64 // Budget consumed per tick

	PlayerRadius float64
	PlayerSpeed  float64
	PlayerStart  Vec2

	CoinRadius float64
	CoinStart  Vec2

	EnemyRadius   float64
	EnemySpeedMin float64
	EnemySpeedMax float64
	EnemyDirMin   float64 // Per-axis magnitude range of the spawn direction
	EnemyDirMax   float64

	// EnemySpeedScale multiplies spawn speed (difficulty). Zero means 1.
	EnemySpeedScale float64

	ProjectileRadius float64
	ProjectileSpeed  float64
	MuzzleOffset     float64 // Spawn distance from the player along the aim

	StartAmmo   int
	AmmoPerCoin int
	MaxAmmo     int // Zero means no cap
}

// DefaultRules returns the shrinking-arena defaults.
func DefaultRules() Rules {
	const w, h = 1200.0, 800.0
	return Rules{
		WorldW:  w,
		WorldH:  h,
		Padding: 20,

		ShrinkPerHit: 20,
		ShrinkStep:   1,

		PlayerRadius: 8,
		PlayerSpeed:  300,
		PlayerStart:  Vec2{X: 30, Y: h / 2},

		CoinRadius: 6,
		CoinStart:  Vec2{X: w - 30, Y: h / 2},

		EnemyRadius:   8,
		EnemySpeedMin: 250,
		EnemySpeedMax: 400,
		EnemyDirMin:   0.2,
		EnemyDirMax:   0.5,

		EnemySpeedScale: 1,

		ProjectileRadius: 3,
		ProjectileSpeed:  500,
		MuzzleOffset:     20,

		StartAmmo:   0,
		AmmoPerCoin: 1,
		MaxAmmo:     0,
	}
}

// InitialBounds returns the arena rectangle at session start.
func (r Rules) InitialBounds() Bounds {
	return Bounds{
		X: r.Padding,
		Y: r.Padding,
		W: r.WorldW - 2*r.Padding,
		H: r.WorldH - 2*r.Padding,
	}
}

func (r Rules) speedScale() float64 {
	if r.EnemySpeedScale <= 0 {
		return 1
	}
	return r.EnemySpeedScale
}

func (r Rules) addAmmo(ammo, n int) int {
	ammo += n
	if r.MaxAmmo > 0 && ammo > r.MaxAmmo {
		ammo = r.MaxAmmo
	}
	return ammo
}
