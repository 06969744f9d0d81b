package arena

import "math"

// Snapshot is the world reduced to integers for hashing and replay checks.
// Positions and lengths are in thousandths of a world unit.
type Snapshot struct {
	Tick   uint64
	Phase  int
	Score  int
	Ammo   int
	Kills  int
	Budget int

	ArenaX, ArenaY, ArenaW, ArenaH int

	AimX, AimY int

	// Each entity is 5 ints: X, Y, DirX, DirY, Speed
	Player      []int
	Coin        []int
	Enemies     []int
	Projectiles []int
}

func fixed(v float64) int {
	return int(math.Round(v * 1000))
}

func flatten(es ...Entity) []int {
	out := make([]int, 0, len(es)*5)
	for _, e := range es {
		out = append(out, fixed(e.Pos.X), fixed(e.Pos.Y), fixed(e.Dir.X), fixed(e.Dir.Y), fixed(e.Speed))
	}
	return out
}

// Snapshot flattens the state.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Tick:   s.Tick,
		Phase:  int(s.Phase),
		Score:  s.Score,
		Ammo:   s.Ammo,
		Kills:  s.Kills,
		Budget: fixed(s.ShrinkBudget),

		ArenaX: fixed(s.Bounds.X),
		ArenaY: fixed(s.Bounds.Y),
		ArenaW: fixed(s.Bounds.W),
		ArenaH: fixed(s.Bounds.H),

		AimX: fixed(s.Aim.X),
		AimY: fixed(s.Aim.Y),

		Player:      flatten(s.Player),
		Coin:        flatten(s.Coin),
		Enemies:     flatten(s.Enemies...),
		Projectiles: flatten(s.Projectiles...),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.Score, snap.Ammo, snap.Kills, snap.Budget,
		snap.ArenaX, snap.ArenaY, snap.ArenaW, snap.ArenaH,
		snap.AimX, snap.AimY,
		len(snap.Enemies), len(snap.Projectiles),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, data := range [][]int{snap.Player, snap.Coin, snap.Enemies, snap.Projectiles} {
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
