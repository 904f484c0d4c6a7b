package gravix2

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestPlanetsSetGetRoundtrip(t *testing.T) {
	p := NewPlanets(3)
	lats := []float64{0, math.Pi / 4, -math.Pi / 3}
	lons := []float64{0, 1.2, -2.9}

	for i := range lats {
		if err := p.Set(i, lats[i], lons[i]); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}

	for i := range lats {
		lat, lon, err := p.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if !floats.EqualWithinAbs(lat, lats[i], 1e-10) {
			t.Fatalf("lat[%d] = %g, want %g", i, lat, lats[i])
		}
		if !floats.EqualWithinAbs(lon, lons[i], 1e-10) {
			t.Fatalf("lon[%d] = %g, want %g", i, lon, lons[i])
		}
	}
}

func TestPlanetsOutOfRange(t *testing.T) {
	p := NewPlanets(2)
	if err := p.Set(2, 0, 0); err != ErrUnknownPlanet {
		t.Fatalf("Set(2): got %v, want ErrUnknownPlanet", err)
	}
	if _, _, err := p.Get(-1); err != ErrUnknownPlanet {
		t.Fatalf("Get(-1): got %v, want ErrUnknownPlanet", err)
	}
}

func TestPlanetsPop(t *testing.T) {
	p := NewPlanets(3)
	if p.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", p.Count())
	}
	if n := p.Pop(); n != 2 {
		t.Fatalf("Pop() = %d, want 2", n)
	}
	if p.Count() != 2 {
		t.Fatalf("Count() after Pop = %d, want 2", p.Count())
	}
	p.Pop()
	if n := p.Pop(); n != 0 {
		t.Fatalf("Pop() of the last planet = %d, want 0", n)
	}
}

func TestPlanetsUnitVectors(t *testing.T) {
	p := NewPlanets(1)
	_ = p.Set(0, 0.3, -1.1)
	v := p.vec(0)
	if !floats.EqualWithinAbs(Mag(v), 1, 1e-12) {
		t.Fatalf("planet position is not a unit vector: |v| = %g", Mag(v))
	}
}
