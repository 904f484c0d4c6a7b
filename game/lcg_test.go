package game

import (
	"math"
	"testing"
)

func TestLinearCongruentialEngineRange(t *testing.T) {
	seed := uint32(42)
	for i := 0; i < 10000; i++ {
		v := linearCongruentialEngine(&seed)
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %g", i, v)
		}
	}
}

func TestLinearCongruentialEngineDeterministic(t *testing.T) {
	seedA := uint32(7)
	seedB := uint32(7)
	for i := 0; i < 100; i++ {
		if a, b := linearCongruentialEngine(&seedA), linearCongruentialEngine(&seedB); a != b {
			t.Fatalf("draw %d diverged: %g != %g", i, a, b)
		}
	}
}

func TestGreatCircleDistanceSamePoint(t *testing.T) {
	if d := greatCircleDistance(0.5, 0.5, -1.2, -1.2); d > 1e-12 {
		t.Fatalf("distance to self = %g, want ~0", d)
	}
}

func TestGreatCircleDistanceAntipodal(t *testing.T) {
	d := greatCircleDistance(math.Pi/2, -math.Pi/2, 0, 0)
	if math.Abs(d-math.Pi) > 1e-9 {
		t.Fatalf("antipodal distance = %g, want pi", d)
	}
}

type fakePlanets struct {
	lats, lons []float64
}

func (f *fakePlanets) Count() int { return len(f.lats) }
func (f *fakePlanets) Set(i int, lat, lon float64) error {
	f.lats[i] = lat
	f.lons[i] = lon
	return nil
}

func TestRandInitPlanetsRespectsMinSeparation(t *testing.T) {
	n := 8
	minDist := 0.3
	planets := &fakePlanets{lats: make([]float64, n), lons: make([]float64, n)}

	seed := uint32(1234)
	draws := RandInitPlanets(planets, &seed, minDist)
	if draws < n {
		t.Fatalf("draws = %d, want >= %d", draws, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := greatCircleDistance(planets.lats[i], planets.lats[j], planets.lons[i], planets.lons[j])
			if d < minDist {
				t.Fatalf("planets %d and %d separated by %g, want >= %g", i, j, d, minDist)
			}
		}
	}
}
