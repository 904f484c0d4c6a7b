package gravix2

import "math"

// IntegrationLoop repeats the composed step at most n times, watching the
// rim threshold, and restores the q·q=1 / q·p=0 invariants exactly on
// exit. The Kahan accumulator is allocated once per call and must not be
// reused across calls.
//
// It returns n_left, the unconsumed step budget; n_left != 0 signals
// premature termination (a missile entered a planet's rim).
func (c Config) IntegrationLoop(qp *QP, h float64, n int, planets *Planets) (nLeft int) {
	var e QP
	threshold := c.cosRim()
	mdist := -1.

	for ; n > 0 && mdist < threshold; n-- {
		composedStep(c, qp, &e, h, planets)
		mdist = MinDist(qp.Q, planets)
	}

	debugAssert(c.StrictAssertions, math.Abs(mdist) <= 1, "min_dist out of range: %g", mdist)

	// Restore invariants exactly.
	norm := Mag(qp.Q)
	qp.Q = qp.Q.scale(1 / norm)
	qp.P = qp.P.sub(qp.Q.scale(Dot(qp.Q, qp.P)))

	return n
}
