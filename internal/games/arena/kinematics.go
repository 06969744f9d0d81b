package arena

// Integrate advances pos along dir at speed for dt seconds.
// dir need not be normalized; a zero dir means no movement.
// It never consults bounds.
func Integrate(pos, dir Vec2, speed, dt float64) Vec2 {
	unit, ok := dir.Normalize()
	if !ok {
		return pos
	}
	return pos.Add(unit.Scale(speed * dt))
}
