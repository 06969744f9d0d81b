package arena

import "fmt"

// Role tags what an entity is. Behaviour differences between roles are
// configuration plus the bounds policy below, never separate types.
type Role int

const (
	RolePlayer Role = iota
	RoleCoin
	RoleEnemy
	RoleProjectile
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleCoin:
		return "coin"
	case RoleEnemy:
		return "enemy"
	case RoleProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// BoundsPolicy is what happens when an entity reaches the arena edge.
type BoundsPolicy int

const (
	PolicyClamp   BoundsPolicy = iota // Stop at the wall
	PolicyReflect                     // Bounce elastically
	PolicyExpire                      // Die on leaving
)

// Policy returns the bounds policy for the role.
func (r Role) Policy() BoundsPolicy {
	switch r {
	case RoleEnemy:
		return PolicyReflect
	case RoleProjectile:
		return PolicyExpire
	default:
		return PolicyClamp
	}
}

// Entity is a moving circle. Dir need not be normalized; the zero vector
// means at rest.
type Entity struct {
	Role   Role
	Pos    Vec2
	Dir    Vec2
	Speed  float64 // World units per second
	Radius float64
	Alive  bool
}

// newEntity builds a live entity, panicking on a non-positive radius or a
// negative speed. Config validation rejects those long before this point.
func newEntity(role Role, pos, dir Vec2, speed, radius float64) Entity {
	if radius <= 0 {
		panic(fmt.Sprintf("arena: %s radius must be positive, got %v", role, radius))
	}
	if speed < 0 {
		panic(fmt.Sprintf("arena: %s speed must be non-negative, got %v", role, speed))
	}
	return Entity{
		Role:   role,
		Pos:    pos,
		Dir:    dir,
		Speed:  speed,
		Radius: radius,
		Alive:  true,
	}
}

// Collides reports whether two circles overlap. Touching is not a hit.
func Collides(a, b Entity) bool {
	return a.Pos.Dist(b.Pos) < a.Radius+b.Radius
}

// advance moves the entity for dt seconds and applies its bounds policy.
// It returns true when a projectile left the arena this call.
func (e *Entity) advance(dt float64, b Bounds) (expired bool) {
	if !e.Alive {
		return false
	}

	e.Pos = Integrate(e.Pos, e.Dir, e.Speed, dt)

	switch e.Role.Policy() {
	case PolicyReflect:
		e.Pos, e.Dir = b.Reflect(e.Pos, e.Dir, e.Radius)
	case PolicyExpire:
		if b.Escapes(e.Pos, e.Radius) {
			e.Alive = false
			return true
		}
	default:
		e.Pos = b.ClampPosition(e.Pos, e.Radius)
	}
	return false
}
