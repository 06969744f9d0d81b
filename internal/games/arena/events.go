package arena

import "fmt"

// Event is something the presentation layer may react to.
// The set is closed: only this package defines events.
type Event interface {
	event()
	String() string
}

// ScoreChanged is emitted whenever the score moves.
type ScoreChanged struct {
	Score int
}

// AmmoChanged is emitted whenever the ammo count moves.
type AmmoChanged struct {
	Ammo int
}

// GameOver is emitted once, on the tick the arena becomes too small.
type GameOver struct {
	Score int
}

// ProjectileExpired is emitted when a projectile leaves the arena.
// Each one adds to the shrink budget.
type ProjectileExpired struct {
	Pos Vec2
}

// PlayerHit is emitted when an enemy touches the player.
// Budget is the pending shrink after the hit.
type PlayerHit struct {
	Budget float64
}

func (ScoreChanged) event()      {}
func (AmmoChanged) event()       {}
func (GameOver) event()          {}
func (ProjectileExpired) event() {}
func (PlayerHit) event()         {}

func (e ScoreChanged) String() string { return fmt.Sprintf("score changed to %d", e.Score) }
func (e AmmoChanged) String() string  { return fmt.Sprintf("ammo changed to %d", e.Ammo) }
func (e GameOver) String() string     { return fmt.Sprintf("game over with score %d", e.Score) }

func (e ProjectileExpired) String() string {
	return fmt.Sprintf("projectile expired at (%.1f, %.1f)", e.Pos.X, e.Pos.Y)
}

func (e PlayerHit) String() string {
	return fmt.Sprintf("player hit, shrink budget %.0f", e.Budget)
}
