package arena

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRolePolicy(t *testing.T) {
	tests := []struct {
		role     Role
		expected BoundsPolicy
	}{
		{RolePlayer, PolicyClamp},
		{RoleCoin, PolicyClamp},
		{RoleEnemy, PolicyReflect},
		{RoleProjectile, PolicyExpire},
	}

	for _, tc := range tests {
		t.Run(tc.role.String(), func(t *testing.T) {
			if got := tc.role.Policy(); got != tc.expected {
				t.Errorf("%s.Policy() = %v, expected %v", tc.role, got, tc.expected)
			}
		})
	}
}

func TestNewEntityPanics(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		radius float64
	}{
		{"zero radius", 10, 0},
		{"negative radius", 10, -1},
		{"negative speed", -1, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("newEntity should panic")
				}
			}()
			newEntity(RoleEnemy, V(0, 0), V(0, 0), tc.speed, tc.radius)
		})
	}
}

func TestCollides(t *testing.T) {
	a := newEntity(RolePlayer, V(0, 0), V(0, 0), 0, 8)

	tests := []struct {
		name     string
		pos      Vec2
		expected bool
	}{
		{"same spot", V(0, 0), true},
		{"overlapping", V(10, 0), true},
		{"touching is not a hit", V(14, 0), false},
		{"apart", V(30, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newEntity(RoleCoin, tc.pos, V(0, 0), 0, 6)
			if got := Collides(a, b); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newEntity(RoleEnemy, drawVec(t, "a"), V(0, 0), 0, rapid.Float64Range(0.1, 50).Draw(t, "ra"))
		b := newEntity(RoleProjectile, drawVec(t, "b"), V(0, 0), 0, rapid.Float64Range(0.1, 50).Draw(t, "rb"))
		if Collides(a, b) != Collides(b, a) {
			t.Fatalf("Collides not symmetric for %+v and %+v", a, b)
		}
	})
}

func TestAdvance(t *testing.T) {
	b := Bounds{X: 0, Y: 0, W: 100, H: 100}

	t.Run("player clamps", func(t *testing.T) {
		e := newEntity(RolePlayer, V(90, 50), V(1, 0), 300, 8)
		if e.advance(1, b) {
			t.Error("player should never expire")
		}
		if e.Pos != V(92, 50) {
			t.Errorf("player pos = %v, expected (92, 50)", e.Pos)
		}
	})

	t.Run("enemy reflects", func(t *testing.T) {
		e := newEntity(RoleEnemy, V(50, 90), V(0, 1), 100, 8)
		e.advance(1, b)
		if e.Pos != V(50, 92) || e.Dir != V(0, -1) {
			t.Errorf("enemy = %v dir %v, expected (50, 92) dir (0, -1)", e.Pos, e.Dir)
		}
	})

	t.Run("projectile expires", func(t *testing.T) {
		e := newEntity(RoleProjectile, V(50, 50), V(-1, 0), 500, 3)
		if !e.advance(1, b) {
			t.Error("projectile leaving the arena should report expiry")
		}
		if e.Alive {
			t.Error("expired projectile should be dead")
		}
		if e.advance(1, b) {
			t.Error("a dead projectile cannot expire twice")
		}
	})

	t.Run("dead entities stay put", func(t *testing.T) {
		e := newEntity(RoleEnemy, V(50, 50), V(1, 0), 100, 8)
		e.Alive = false
		e.advance(1, b)
		if e.Pos != V(50, 50) {
			t.Errorf("dead enemy moved to %v", e.Pos)
		}
	})
}
