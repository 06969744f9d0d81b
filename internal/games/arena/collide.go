package arena

// place picks a spawn point for a circle of radius r in the half of b
// opposite the player, so nothing appears on top of them.
func place(b Bounds, player Vec2, r float64, rng Rand) Vec2 {
	mid := b.Center().X

	var lo, hi float64
	if player.X < mid {
		lo, hi = mid+r, b.Right()-r
	} else {
		lo, hi = b.X+r, mid-r
	}

	return Vec2{
		X: uniform(rng, lo, hi),
		Y: uniform(rng, b.Y+r, b.Bottom()-r),
	}
}

// spawnEnemy creates an enemy by the placement rule, heading in a random
// diagonal at a random speed.
func spawnEnemy(s *State, rules Rules, rng Rand) Entity {
	pos := place(s.Bounds, s.Player.Pos, rules.EnemyRadius, rng)
	speed := uniform(rng, rules.EnemySpeedMin, rules.EnemySpeedMax) * rules.speedScale()
	dx := uniform(rng, rules.EnemyDirMin, rules.EnemyDirMax) * sign(rng)
	dy := uniform(rng, rules.EnemyDirMin, rules.EnemyDirMax) * sign(rng)
	return newEntity(RoleEnemy, pos, V(dx, dy), speed, rules.EnemyRadius)
}

// collectCoin handles the player touching the coin.
func (s *State) collectCoin(rules Rules, rng Rand, ev []Event) []Event {
	if !Collides(s.Player, s.Coin) {
		return ev
	}

	s.Score++
	s.Ammo = rules.addAmmo(s.Ammo, rules.AmmoPerCoin)
	ev = append(ev, ScoreChanged{Score: s.Score}, AmmoChanged{Ammo: s.Ammo})

	s.Enemies = append(s.Enemies, spawnEnemy(s, rules, rng))

	pos := place(s.Bounds, s.Player.Pos, s.Coin.Radius, rng)
	s.Coin.Pos = s.Bounds.ClampPosition(pos, s.Coin.Radius)
	return ev
}

// resolveShots pairs enemies with projectiles. The first live projectile
// touching an enemy takes it out, and each projectile is spent on at most
// one enemy.
func (s *State) resolveShots(ev []Event) []Event {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}
		for j := range s.Projectiles {
			p := &s.Projectiles[j]
			if !p.Alive || !Collides(*e, *p) {
				continue
			}
			e.Alive = false
			p.Alive = false
			s.Score++
			s.Kills++
			ev = append(ev, ScoreChanged{Score: s.Score})
			break
		}
	}
	return ev
}

// resolvePlayerHits removes enemies touching the player and grows the
// shrink budget. The player itself is never removed.
func (s *State) resolvePlayerHits(rules Rules, ev []Event) []Event {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive || !Collides(*e, s.Player) {
			continue
		}
		e.Alive = false
		s.ShrinkBudget += rules.ShrinkPerHit
		ev = append(ev, PlayerHit{Budget: s.ShrinkBudget})
	}
	return ev
}

// shrink spends up to one step of the budget and keeps the coin inside.
func (s *State) shrink(rules Rules) {
	if s.ShrinkBudget <= 0 || rules.ShrinkStep <= 0 {
		return
	}
	step := min(rules.ShrinkStep, s.ShrinkBudget)
	s.Bounds = s.Bounds.Shrink(step)
	s.ShrinkBudget -= step
	s.Coin.Pos = s.Bounds.ClampPosition(s.Coin.Pos, s.Coin.Radius)
}
