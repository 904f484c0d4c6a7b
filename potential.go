package gravix2

import "math"

// Potential is a polymorphic capability standing in for the reference
// implementation's preprocessor POT_TYPE switch: a Config picks one
// implementation at construction time and every subsequent force
// evaluation dispatches through it.
type Potential interface {
	// term returns the scalar multiplier s such that a planet at unit
	// position y contributes s*y to the (unprojected) gradient of the
	// potential at a point q with d = q·y.
	term(d float64) float64
	// escSpeed returns the escape speed for a single isolated planet
	// with rim radius delta.
	escSpeed(delta float64) float64
	// scrclSpeed returns the circular-orbit speed at angular radius r.
	scrclSpeed(r float64) float64
}

type potential2D struct{}

func (potential2D) term(d float64) float64 {
	return -1. / (1. - d)
}

func (potential2D) escSpeed(delta float64) float64 {
	return math.Sqrt(-2 * math.Log(math.Sin(delta/2)))
}

func (potential2D) scrclSpeed(r float64) float64 {
	cosR := math.Cos(r)
	return math.Sqrt((1 + cosR) / math.Abs(cosR))
}

type potential3D struct {
	n int
}

// pot3D evaluates the truncated series for the 3D potential, accumulating
// from i=0 to N-1 in the order given; the i=0 term is the largest.
func (p potential3D) pot3D(x float64) float64 {
	acc := 0.
	for i := 0; i < p.n; i++ {
		twoPiI := 2 * math.Pi * float64(i)
		acc += 1./(twoPiI+x) + 1./(2*math.Pi*float64(i+1)-x) - 4./(2*math.Pi*float64(2*i+1))
	}
	return acc / (4 * math.Pi * math.Pi)
}

// f3D evaluates the series for the tangential force coefficient,
// accumulating from i=0 to N-1, which runs k from its largest value down
// so the smallest contribution is added first, for numerical stability.
func (p potential3D) f3D(x float64) float64 {
	acc := 0.
	for i := 0; i < p.n; i++ {
		k := float64(2*(p.n-1-i) + 1)
		denom := math.Pi*math.Pi*k*k - x*x
		acc += k / (denom * denom)
	}
	return -acc / sinc(x)
}

func (p potential3D) term(d float64) float64 {
	return p.f3D(math.Acos(d) - math.Pi)
}

func (p potential3D) escSpeed(delta float64) float64 {
	return math.Sqrt(2 * p.pot3D(delta))
}

func (p potential3D) scrclSpeed(r float64) float64 {
	cosR := math.Cos(r)
	sinR := math.Sin(r)
	return sinR * math.Sqrt(-p.f3D(r-math.Pi)/math.Abs(cosR))
}

// GradV returns the (unprojected) gradient of the potential at q given
// the current planets; q itself is not modified. It does not project onto
// the tangent plane; that is strang2's job.
func (c Config) GradV(q Vec3, planets *Planets) Vec3 {
	acc := Vec3{}
	for i := 0; i < planets.Count(); i++ {
		y := planets.vec(i)
		d := Dot(q, y)
		s := c.pot.term(d)
		acc = acc.add(y.scale(s))
	}
	return acc
}

// MinDist returns the cosine of the smallest geodesic distance between q
// and any planet, i.e. the maximum of q·y_i. It returns -1 for an empty
// Planets.
func MinDist(q Vec3, planets *Planets) float64 {
	m := -1.
	for i := 0; i < planets.Count(); i++ {
		if d := Dot(q, planets.vec(i)); d > m {
			m = d
		}
	}
	return m
}
