// Package arena implements the shrinking arena: the player steers a
// circle, collects coins for ammo, and shoots enemies bouncing around an
// arena that contracts each time the player is hit or a shot goes wide.
//
// The simulation (Step, Fire, Session) is pure and deterministic given a
// Rand and a Clock. Game adapts it to the platform's registry.Game.
package arena

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/shrink-arena/internal/config"
	"github.com/vovakirdan/shrink-arena/internal/core"
	"github.com/vovakirdan/shrink-arena/internal/registry"
)

// configPath and difficultyPreset are set from CLI flags before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty means "as configured".
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

type variant struct {
	title       string
	description string
}

var variants = map[string]variant{
	"arena": {
		title:       "Shrinking Arena",
		description: "Grab coins for ammo, shoot enemies, don't let the walls close in",
	},
	"inventorium": {
		title:       "Inventorium",
		description: "Smaller arena, starting clip, capped magazine",
	},
}

// Game adapts a Session to registry.Game.
type Game struct {
	id         string
	runtime    core.RuntimeConfig
	cfg        config.ArenaConfig
	base       Rules
	difficulty *config.DifficultyManager
	session    *Session
	events     []Event
	paused     bool
}

// New creates an arena game for the variant id.
func New(id string) *Game {
	return &Game{id: id}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return variants[g.id].title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return variants[g.id].description
}

// RulesFromConfig maps a loaded config onto simulation rules.
func RulesFromConfig(cfg config.ArenaConfig) Rules {
	return Rules{
		WorldW:  cfg.World.Width,
		WorldH:  cfg.World.Height,
		Padding: cfg.World.Padding,

		ShrinkPerHit: cfg.Gameplay.ShrinkPerHit,
		ShrinkStep:   cfg.Gameplay.ShrinkStep,

		PlayerRadius: cfg.Player.Radius,
		PlayerSpeed:  cfg.Player.Speed,
		PlayerStart:  V(cfg.Player.StartX, cfg.Player.StartY),

		CoinRadius: cfg.Coin.Radius,
		CoinStart:  V(cfg.Coin.StartX, cfg.Coin.StartY),

		EnemyRadius:   cfg.Enemy.Radius,
		EnemySpeedMin: cfg.Enemy.MinSpeed,
		EnemySpeedMax: cfg.Enemy.MaxSpeed,
		EnemyDirMin:   cfg.Enemy.MinDir,
		EnemyDirMax:   cfg.Enemy.MaxDir,

		EnemySpeedScale: 1,

		ProjectileRadius: cfg.Projectile.Radius,
		ProjectileSpeed:  cfg.Projectile.Speed,
		MuzzleOffset:     cfg.Projectile.MuzzleOffset,

		StartAmmo:   cfg.Gameplay.StartAmmo,
		AmmoPerCoin: cfg.Gameplay.AmmoPerCoin,
		MaxAmmo:     cfg.Gameplay.MaxAmmo,
	}
}

// Reset loads the variant config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config; the CLI reports load errors before we get here
	cfg, err := config.Load(g.id, configPath)
	if err != nil {
		cfg = config.Default(g.id)
	}
	config.ApplyArenaPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.base = RulesFromConfig(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//#nosec G404 -- gameplay randomness, not security sensitive
	g.session = NewSession(g.scaledRules(0, 0), rand.New(rand.NewSource(seed)), nil)
	g.events = nil
	g.paused = false
}

// Resize follows a terminal resize without restarting. World coordinates
// do not depend on the screen, only the view does.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// scaledRules applies the difficulty curve to enemy spawn speed.
func (g *Game) scaledRules(score int, ticks uint64) Rules {
	r := g.base
	r.EnemySpeedScale = g.difficulty.Multiplier(score, int(min(ticks, math.MaxInt32))) //#nosec G115 -- capped above
	return r
}

var moves = [...]struct {
	action core.Action
	axis   Axis
}{
	{core.ActionUp, AxisUp},
	{core.ActionDown, AxisDown},
	{core.ActionLeft, AxisLeft},
	{core.ActionRight, AxisRight},
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.session.Over() {
		if in.Has(core.ActionRestart) {
			g.session.SetRules(g.scaledRules(0, 0))
			g.session.Restart()
			g.paused = false
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	for _, m := range moves {
		g.session.SetMoveIntent(m.axis, in.Has(m.action))
	}
	if in.Pointer.Valid {
		g.session.SetAimTarget(g.view().toWorld(in.Pointer.X, in.Pointer.Y))
	}

	st := g.session.State()
	g.session.SetRules(g.scaledRules(st.Score, st.Tick))

	if in.Has(core.ActionFire) {
		g.events = append(g.events, g.session.Fire()...)
	}
	g.events = append(g.events, g.session.Tick(g.runtime.TickSeconds())...)

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	for _, e := range g.events {
		res.Events = append(res.Events, e.String())
	}
	return res
}

// Events returns the events produced by the last Step.
func (g *Game) Events() []Event {
	return append([]Event(nil), g.events...)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Summary describes the current run for the score database.
func (g *Game) Summary() core.RunSummary {
	st := g.session.State()
	return core.RunSummary{
		Score:  st.Score,
		Kills:  st.Kills,
		Ticks:  st.Tick,
		ArenaW: int(math.Round(st.Bounds.W)),
		ArenaH: int(math.Round(st.Bounds.H)),
	}
}

func init() {
	for id := range variants {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
