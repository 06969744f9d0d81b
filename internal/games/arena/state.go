package arena

// Phase is the session state machine: Playing until the arena is
// exhausted, then GameOver until an explicit restart.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "gameover"
	}
	return "playing"
}

// State is the whole world at one instant. It is a plain value: Step
// returns a new State and never mutates the one it was given.
type State struct {
	Phase  Phase
	Tick   uint64
	Bounds Bounds

	Player      Entity
	Coin        Entity
	Enemies     []Entity
	Projectiles []Entity

	Aim          Vec2 // Unit vector from the player toward the pointer
	Score        int
	Ammo         int
	Kills        int     // Enemies destroyed by projectiles
	ShrinkBudget float64 // Pending arena contraction
}

// NewState returns the start-of-session world for the given rules.
func NewState(rules Rules) State {
	b := rules.InitialBounds()
	return State{
		Phase:       PhasePlaying,
		Bounds:      b,
		Player:      newEntity(RolePlayer, rules.PlayerStart, Vec2{}, rules.PlayerSpeed, rules.PlayerRadius),
		Coin:        newEntity(RoleCoin, b.ClampPosition(rules.CoinStart, rules.CoinRadius), Vec2{}, 0, rules.CoinRadius),
		Enemies:     []Entity{},
		Projectiles: []Entity{},
		Aim:         Vec2{X: 1},
		Ammo:        rules.StartAmmo,
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	c.Enemies = append(make([]Entity, 0, len(s.Enemies)), s.Enemies...)
	c.Projectiles = append(make([]Entity, 0, len(s.Projectiles)), s.Projectiles...)
	return c
}

// Over reports whether the session has ended.
func (s State) Over() bool {
	return s.Phase == PhaseGameOver
}

// compact drops dead enemies and projectiles, keeping survivor order.
func (s *State) compact() {
	s.Enemies = keepAlive(s.Enemies)
	s.Projectiles = keepAlive(s.Projectiles)
}

func keepAlive(es []Entity) []Entity {
	out := es[:0]
	for _, e := range es {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}
