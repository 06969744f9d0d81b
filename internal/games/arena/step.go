package arena

import "math"

// Axis names one of the four movement intents.
type Axis int

const (
	AxisUp Axis = iota
	AxisDown
	AxisLeft
	AxisRight
)

// Input is everything the player controls for one tick.
type Input struct {
	Up, Down, Left, Right bool

	Pointer    Vec2 // World-space aim target
	HasPointer bool
}

// Set records a held or released movement intent.
func (in *Input) Set(a Axis, pressed bool) {
	switch a {
	case AxisUp:
		in.Up = pressed
	case AxisDown:
		in.Down = pressed
	case AxisLeft:
		in.Left = pressed
	case AxisRight:
		in.Right = pressed
	}
}

// Direction returns the movement direction. Opposite keys cancel.
func (in Input) Direction() Vec2 {
	return Vec2{X: axis(in.Left, in.Right), Y: axis(in.Up, in.Down)}
}

func axis(neg, pos bool) float64 {
	var v float64
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// Step advances the world by dt seconds. It never mutates s.
//
// Order within a tick: the terminal check, motion with bounds policies,
// aim, coin pickup, projectile hits, player hits, then one shrink step and
// removal of the dead. A finished world is returned unchanged.
func Step(s State, in Input, dt float64, rules Rules, rng Rand) (State, []Event) {
	next := s.Clone()
	if next.Over() {
		return next, nil
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	if next.Bounds.Exhausted(next.Player.Radius) {
		next.Phase = PhaseGameOver
		return next, []Event{GameOver{Score: next.Score}}
	}

	next.Tick++
	var ev []Event

	next.Player.Dir = in.Direction()
	next.Player.advance(dt, next.Bounds)
	next.aimAt(in)

	for i := range next.Enemies {
		next.Enemies[i].advance(dt, next.Bounds)
	}

	expired := 0
	for i := range next.Projectiles {
		p := &next.Projectiles[i]
		if p.advance(dt, next.Bounds) {
			expired++
			ev = append(ev, ProjectileExpired{Pos: p.Pos})
		}
	}

	ev = next.collectCoin(rules, rng, ev)
	ev = next.resolveShots(ev)
	ev = next.resolvePlayerHits(rules, ev)
	next.ShrinkBudget += float64(expired) * rules.ShrinkPerHit

	next.shrink(rules)
	next.compact()

	return next, ev
}

// aimAt points the turret at the pointer. Without a pointer, or with the
// pointer exactly on the player, the previous aim stays.
func (s *State) aimAt(in Input) {
	if !in.HasPointer {
		return
	}
	if aim, ok := in.Pointer.Sub(s.Player.Pos).Normalize(); ok {
		s.Aim = aim
	}
}

// Fire spends one round and launches a projectile along the aim. It does
// nothing without ammo or once the game is over.
func Fire(s State, rules Rules) (State, []Event) {
	next := s.Clone()
	if next.Over() || next.Ammo <= 0 {
		return next, nil
	}

	next.Ammo--
	pos := next.Player.Pos.Add(next.Aim.Scale(rules.MuzzleOffset))
	next.Projectiles = append(next.Projectiles,
		newEntity(RoleProjectile, pos, next.Aim, rules.ProjectileSpeed, rules.ProjectileRadius))

	return next, []Event{AmmoChanged{Ammo: next.Ammo}}
}
