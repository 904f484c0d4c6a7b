package gravix2

import "math"

// QP is a point in phase space T*S², a pair of canonical position and
// conjugate momentum.
type QP struct {
	Q, P Vec3
}

func (a QP) add(b QP) QP {
	return QP{a.Q.add(b.Q), a.P.add(b.P)}
}

func (a QP) sub(b QP) QP {
	return QP{a.Q.sub(b.Q), a.P.sub(b.P)}
}

// kahanAddVec performs one Kahan-compensated accumulation of delta into
// v, using and updating the error accumulator e in place.
func kahanAddVec(v *Vec3, e *Vec3, delta Vec3) {
	*e = e.add(delta)
	vPrime := v.add(*e)
	*e = e.add(v.sub(vPrime))
	*v = vPrime
}

// kahanAdd performs one Kahan-compensated accumulation of delta into qp,
// using and updating the error accumulator e in place. Q and P are
// accumulated independently, so a zero delta on one leaves it, and its
// compensator, untouched. The accumulator e must be shared across an
// entire integration loop, not reset per step.
func kahanAdd(qp *QP, e *QP, delta QP) {
	kahanAddVec(&qp.Q, &e.Q, delta.Q)
	kahanAddVec(&qp.P, &e.P, delta.P)
}

// strang1 applies the free-geodesic half flow (q̇=p, ṗ=-‖p‖²q on the
// sphere) for time h.
func strang1(qp *QP, e *QP, h float64) {
	p2 := Dot(qp.P, qp.P)
	p := math.Sqrt(p2)
	phi := p * h

	// cosφ-1 = -2sin²(φ/2), preserves precision for small φ.
	sinHalf := math.Sin(phi / 2)
	cosPhiM1 := -2 * sinHalf * sinHalf
	sincPhi := sinc(phi)

	dq := qp.Q.scale(cosPhiM1).add(qp.P.scale(h * sincPhi))
	dp := qp.P.scale(cosPhiM1).sub(qp.Q.scale(p2 * h * sincPhi))

	kahanAdd(qp, e, QP{Q: dq, P: dp})
}

// strang2 applies the potential kick half flow for time h. q and its
// compensator are left untouched; only p is updated.
func strang2(cfg Config, qp *QP, e *QP, h float64, planets *Planets) {
	gradV := cfg.GradV(qp.Q, planets)
	qDotGradV := Dot(qp.Q, gradV)
	tangentForce := qp.Q.scale(qDotGradV).sub(gradV)

	kahanAddVec(&qp.P, &e.P, tangentForce.scale(h))
}
