package gravix2

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// TrajectoryState tags the lifecycle of a Trajectory:
// Uninitialized -> Initialized -> Terminated, with reinitialization via
// InitMissile/LaunchMissile the only way out of Terminated.
type TrajectoryState int

// Trajectory lifecycle states.
const (
	Uninitialized TrajectoryState = iota
	Initialized
	Terminated
)

// Trajectory is a fixed-length ordered sequence of K phase-space samples.
// Samples[K-1] always holds the most recently produced state and seeds
// the next PropagateMissile call.
type Trajectory struct {
	Samples []QP
	State   TrajectoryState
}

// NewTrajectory allocates an uninitialized trajectory of the given size.
func NewTrajectory(k int) *Trajectory {
	return &Trajectory{Samples: make([]QP, k), State: Uninitialized}
}

// MissileBatch is a batch of independently owned trajectories, grouped to
// amortize allocation the way the reference implementation's
// new_missiles(n) does.
type MissileBatch struct {
	trajectories []Trajectory
}

// NewMissileBatch allocates n trajectories of the size fixed by cfg.
func NewMissileBatch(cfg Config, n int) *MissileBatch {
	b := &MissileBatch{trajectories: make([]Trajectory, n)}
	for i := range b.trajectories {
		b.trajectories[i] = Trajectory{Samples: make([]QP, cfg.trajectorySize), State: Uninitialized}
	}
	return b
}

// Trajectory returns the i-th trajectory of the batch.
func (b *MissileBatch) Trajectory(i int) *Trajectory {
	return &b.trajectories[i]
}

// InitMissile places a missile at (lat, lon) with speed v pointing in
// direction (dlat, dlon), where dlon is pre-scaled by cosφ. It fails
// with ErrZeroDirection if the direction vector vanishes.
func (cfg Config) InitMissile(trj *Trajectory, lat, lon, v, dlat, dlon float64) error {
	dv := math.Hypot(dlat, dlon)
	if floats.EqualWithinAbs(dv, 0, 1e-12) {
		return ErrZeroDirection
	}

	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	q := Vec3{X: cosLat * sinLon, Y: cosLat * cosLon, Z: sinLat}
	eLat := Vec3{X: -sinLat * sinLon, Y: -sinLat * cosLon, Z: cosLat}
	eLon := Vec3{X: cosLon, Y: -sinLon, Z: 0}

	dir := eLat.scale(dlat).add(eLon.scale(dlon))
	p := dir.scale(v / dv)

	qp := QP{Q: q, P: p}
	trj.Samples[0] = qp
	trj.Samples[len(trj.Samples)-1] = qp
	trj.State = Initialized
	return nil
}

// rotationMatrix builds the rotation that carries the canonical frame at
// a planet's "north pole" to the planet's own (lat, lon) position.
func rotationMatrix(lat, lon float64) *mat64.Dense {
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	return mat64.NewDense(3, 3, []float64{
		-cosLon, -sinLat * sinLon, cosLat * sinLon,
		sinLon, -sinLat * cosLon, cosLat * cosLon,
		0, cosLat, sinLat,
	})
}

// LaunchMissile places a missile on the rim of planetID with outward
// bearing psi (radians) and speed v. It fails with ErrUnknownPlanet when
// planetID is out of range.
func (cfg Config) LaunchMissile(trj *Trajectory, planets *Planets, planetID int, v, psi float64) error {
	planetLat, planetLon, err := planets.Get(planetID)
	if err != nil {
		return err
	}

	rot := rotationMatrix(planetLat, planetLon)

	sinR, cosR := math.Sincos(cfg.minDist)
	sinPsi, cosPsi := math.Sincos(psi)

	x0 := mat64.NewVector(3, []float64{sinR * sinPsi, sinR * cosPsi, cosR})
	v0 := mat64.NewVector(3, []float64{cosR * sinPsi, cosR * cosPsi, -sinR})

	xVec := mat64.NewVector(3, nil)
	vVec := mat64.NewVector(3, nil)
	xVec.MulVec(rot, x0)
	vVec.MulVec(rot, v0)

	x := Vec3{X: xVec.At(0, 0), Y: xVec.At(1, 0), Z: xVec.At(2, 0)}
	dir := Vec3{X: vVec.At(0, 0), Y: vVec.At(1, 0), Z: vVec.At(2, 0)}

	lat := Lat(x.Z)
	lon := Lon(x.X, x.Y)

	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	eLat := Vec3{X: -sinLat * sinLon, Y: -sinLat * cosLon, Z: cosLat}
	eLon := Vec3{X: cosLon, Y: -sinLon, Z: 0}

	dlat := Dot(dir, eLat)
	dlon := Dot(dir, eLon)

	return cfg.InitMissile(trj, lat, lon, v, dlat, dlon)
}

// PropagateMissile advances trj by up to K*IntSteps composed steps, where
// K is the configured trajectory size. The slot at which a missile enters
// a planet's rim is still written and counted before the loop stops; n
// reports how many slots were freshly written this call. Calling
// PropagateMissile again on a Terminated trajectory returns
// ErrTerminated, tightening the reference implementation's "undefined
// until reinitialization".
func (cfg Config) PropagateMissile(trj *Trajectory, planets *Planets, h float64) (n int, premature bool, err error) {
	if trj.State != Initialized {
		return 0, false, ErrTerminated
	}

	k := len(trj.Samples)
	qp := trj.Samples[k-1]

	for i := 0; i < k; i++ {
		nLeft := cfg.IntegrationLoop(&qp, h, cfg.intSteps, planets)
		trj.Samples[i] = qp
		n = i + 1
		if nLeft != 0 {
			premature = true
			trj.State = Terminated
			break
		}
	}

	return n, premature, nil
}
