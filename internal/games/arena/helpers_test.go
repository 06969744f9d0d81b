package arena

import (
	"math"
	"time"
)

// scriptedRand replays vals in a loop. With no values it always returns 0.5.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// quiet returns default rules and a state with nothing moving.
func quiet() (Rules, State) {
	rules := DefaultRules()
	return rules, NewState(rules)
}

func enemyAt(x, y float64, dir Vec2, speed float64) Entity {
	return newEntity(RoleEnemy, V(x, y), dir, speed, 8)
}

func projectileAt(x, y float64, dir Vec2, speed float64) Entity {
	return newEntity(RoleProjectile, V(x, y), dir, speed, 3)
}

func countEvents[T Event](ev []Event) int {
	n := 0
	for _, e := range ev {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
