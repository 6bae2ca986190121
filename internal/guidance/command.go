package guidance

// MinRangeSq is the squared line-of-sight length below which no command is
// computed. The comparison is strict.
const MinRangeSq = 1e-12

// Solution is one evaluation of the guidance law.
type Solution struct {
	Accel   Vec2    // lateral acceleration command
	LOSRate float64 // (vt - vi) x los / |los|^2, without the gain
}

// Solve evaluates the pure proportional-navigation law once:
//
//	cross = (vt - vi) x los
//	a     = N * cross / |los|^2 * perp(vi)
//
// It reports false, with a zero Solution, when the line of sight is shorter
// than sqrt(MinRangeSq).
func Solve(lineOfSight, targetVelocity, interceptorVelocity Vec2, gain float64) (Solution, bool) {
	r2 := lineOfSight.LenSq()
	if r2 < MinRangeSq {
		return Solution{}, false
	}
	cross := targetVelocity.Sub(interceptorVelocity).Cross(lineOfSight)
	a := interceptorVelocity.Perp().Scale(gain * cross / r2)
	// A zero command is +0 in both components; -0 would give it a heading of π.
	if a.X == 0 {
		a.X = 0
	}
	if a.Y == 0 {
		a.Y = 0
	}
	return Solution{Accel: a, LOSRate: cross / r2}, true
}

// LOSRate returns the line-of-sight rotation rate proxy
//
//	(vt - vi) x los / |los|^2
//
// It reports false when the line of sight is degenerate.
func LOSRate(lineOfSight, targetVelocity, interceptorVelocity Vec2) (float64, bool) {
	sol, ok := Solve(lineOfSight, targetVelocity, interceptorVelocity, 0)
	return sol.LOSRate, ok
}

// Command computes the lateral acceleration command. The command is always
// perpendicular to the interceptor velocity. When the line of sight is
// degenerate (target co-located with the interceptor) it returns the zero
// vector and false; a zero vector with true is a real "hold course" command.
func Command(lineOfSight, targetVelocity, interceptorVelocity Vec2, gain float64) (Vec2, bool) {
	sol, ok := Solve(lineOfSight, targetVelocity, interceptorVelocity, gain)
	return sol.Accel, ok
}
