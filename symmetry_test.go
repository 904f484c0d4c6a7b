package gravix2

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

// TestReverseTimeSymmetryScenario launches a missile at 2*v_esc, psi=-pi/2,
// h=1e-3, lets it run for N=50 trajectory slots (IntSteps=4 composed steps
// each), then launches a second missile from that state with momentum
// negated. The second trajectory must retrace the first in reverse to
// within 1e-10, and must terminate prematurely after N or N+1 slots
// (integration stops after the missile has already passed the rim, not
// before).
func TestReverseTimeSymmetryScenario(t *testing.T) {
	const h = 1e-3
	const trajectorySize = 64
	const n = 50

	cfg, err := NewConfig(Pot2D, 0, trajectorySize, 4, 0.1, SchemeP4S3)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	v0 := 2 * cfg.VEsc()
	if period := cfg.OrbPeriod(v0, h); float64(n) >= period {
		t.Fatalf("orb_period too short for N=%d: %g", n, period)
	}

	planets := NewPlanets(1)
	_ = planets.Set(0, 0, 0)

	trj1 := NewTrajectory(trajectorySize)
	if err := cfg.LaunchMissile(trj1, planets, 0, v0, -math.Pi/2); err != nil {
		t.Fatalf("LaunchMissile m1: %v", err)
	}
	n1, _, err := cfg.PropagateMissile(trj1, planets, h)
	if err != nil {
		t.Fatalf("PropagateMissile m1: %v", err)
	}
	if n1 < n {
		t.Fatalf("m1 wrote %d samples, want >= %d", n1, n)
	}

	mid := trj1.Samples[n-1]
	lat2 := Lat(mid.Q.Z)
	lon2 := Lon(mid.Q.X, mid.Q.Y)
	vlat2 := VLat(mid.P.X, mid.P.Y, mid.P.Z, lat2, lon2)
	vlon2 := VLon(mid.P.X, mid.P.Y, mid.P.Z, lon2)
	speed := Mag(mid.P)

	trj2 := NewTrajectory(trajectorySize)
	if err := cfg.InitMissile(trj2, lat2, lon2, -speed, vlat2, vlon2); err != nil {
		t.Fatalf("InitMissile m2: %v", err)
	}

	n2, premature, err := cfg.PropagateMissile(trj2, planets, h)
	if err != nil {
		t.Fatalf("PropagateMissile m2: %v", err)
	}
	if !premature {
		t.Fatal("m2 did not terminate prematurely")
	}
	if n2 != n && n2 != n+1 {
		t.Fatalf("n2 = %d, want %d or %d", n2, n, n+1)
	}

	for i := 0; i < n-2; i++ {
		j := n - i - 2
		a, b := trj1.Samples[j], trj2.Samples[i]
		if d := Mag(a.Q.sub(b.Q)); d > 1e-10 {
			t.Fatalf("sample %d: |m1.q[%d] - m2.q[%d]| = %g", i, j, i, d)
		}
		if d := Mag(a.P.add(b.P)); d > 1e-10 {
			t.Fatalf("sample %d: |m1.p[%d] + m2.p[%d]| = %g", i, j, i, d)
		}
		if !floats.EqualWithinAbs(Mag(a.P), Mag(b.P), 1e-10) {
			t.Fatalf("sample %d: speed mismatch %g vs %g", i, Mag(a.P), Mag(b.P))
		}
	}
}
