package gravix2

import "math"

// VEsc returns the escape speed for a single isolated planet at the
// configured rim radius.
func (c Config) VEsc() float64 {
	return c.pot.escSpeed(c.minDist)
}

// VScrcl returns the speed of a circular orbit at angular radius r around
// a single isolated planet.
func (c Config) VScrcl(r float64) float64 {
	return c.pot.scrclSpeed(r)
}

// OrbPeriod estimates the orbital period for a missile launched at speed
// v against a single planet at the origin, by bracketing the rim crossing
// and extrapolating a fractional composed step assuming locally uniform
// acceleration.
func (c Config) OrbPeriod(v, h float64) float64 {
	sinDelta, cosDelta := math.Sincos(c.minDist)
	threshold := cosDelta

	qp := QP{
		Q: Vec3{X: 0, Y: cosDelta, Z: sinDelta},
		P: Vec3{X: 0, Y: -v * sinDelta, Z: v * cosDelta},
	}

	planets := NewPlanets(1)
	_ = planets.Set(0, 0, 0)

	var e QP
	prev := qp
	next := qp
	t := 0
	for {
		prev = next
		composedStep(c, &next, &e, h, planets)
		t++
		if MinDist(next.Q, planets) >= threshold {
			break
		}
	}

	s := math.Acos(prev.Q.Y) - c.minDist
	debugAssert(c.StrictAssertions, s > 0, "orb_period: s must be positive, got %g", s)

	a := Mag(next.P) - Mag(prev.P)
	debugAssert(c.StrictAssertions, a > 0, "orb_period: a must be positive, got %g", a)

	dt := math.Sqrt(2 * s / a)
	debugAssert(c.StrictAssertions, !math.IsNaN(dt) && dt < 1, "orb_period: dt out of range, got %g", dt)

	return (float64(t) + dt) / float64(c.intSteps)
}
