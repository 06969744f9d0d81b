package arena

import "time"

// MaxFrameDelta caps the time step Update feeds the simulation, so a
// stalled host does not teleport entities through walls.
const MaxFrameDelta = 250 * time.Millisecond

// Session owns one running world plus the player's held input.
// It is driven from a single goroutine and is not safe for concurrent use.
type Session struct {
	rules Rules
	rng   Rand
	clock Clock

	state State
	input Input
	last  time.Time
}

// NewSession starts a session. A nil clock means the system clock; rng
// must not be nil.
func NewSession(rules Rules, rng Rand, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		rules: rules,
		rng:   rng,
		clock: clock,
	}
	s.Restart()
	return s
}

// SetMoveIntent records a direction key being held or released.
func (s *Session) SetMoveIntent(a Axis, pressed bool) {
	s.input.Set(a, pressed)
}

// SetAimTarget points the turret at a world-space position from the
// next tick on.
func (s *Session) SetAimTarget(x, y float64) {
	s.input.Pointer = V(x, y)
	s.input.HasPointer = true
}

// Fire launches a projectile if ammo allows.
func (s *Session) Fire() []Event {
	var ev []Event
	s.state, ev = Fire(s.state, s.rules)
	return ev
}

// Restart discards the world and begins again from the initial state.
// Held input and the frame clock are reset too, so calling it twice is
// the same as calling it once.
func (s *Session) Restart() {
	s.state = NewState(s.rules)
	s.input = Input{}
	s.last = time.Time{}
}

// Tick advances the world by dt seconds.
func (s *Session) Tick(dt float64) []Event {
	var ev []Event
	s.state, ev = Step(s.state, s.input, dt, s.rules, s.rng)
	return ev
}

// Update advances by the wall time since the previous Update, capped at
// MaxFrameDelta. The first call after a restart only starts the clock.
func (s *Session) Update() []Event {
	now := s.clock.Now()
	var dt time.Duration
	if !s.last.IsZero() {
		dt = min(now.Sub(s.last), MaxFrameDelta)
	}
	s.last = now
	return s.Tick(dt.Seconds())
}

// SetRules swaps the tunables used by later ticks. The current world is
// kept; Restart builds the next one from these rules.
func (s *Session) SetRules(r Rules) {
	s.rules = r
}

// Rules returns the active tunables.
func (s *Session) Rules() Rules { return s.rules }

// State returns a copy of the whole world.
func (s *Session) State() State { return s.state.Clone() }

func (s *Session) Player() Entity { return s.state.Player }
func (s *Session) Coin() Entity   { return s.state.Coin }
func (s *Session) Bounds() Bounds { return s.state.Bounds }
func (s *Session) Score() int     { return s.state.Score }
func (s *Session) Ammo() int      { return s.state.Ammo }
func (s *Session) Aim() Vec2      { return s.state.Aim }
func (s *Session) Over() bool     { return s.state.Over() }

// Enemies returns a copy of the live enemies.
func (s *Session) Enemies() []Entity {
	return append([]Entity(nil), s.state.Enemies...)
}

// Projectiles returns a copy of the live projectiles.
func (s *Session) Projectiles() []Entity {
	return append([]Entity(nil), s.state.Projectiles...)
}

// Snapshot flattens the current world.
func (s *Session) Snapshot() Snapshot {
	return s.state.Snapshot()
}
