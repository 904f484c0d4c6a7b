// Package game is a tick-driven scheduler built on top of the gravix2
// physics core: it turns the propagation primitives of package gravix2
// into the building blocks of a server-side game — randomized planet
// placement, scheduled missile launches, and observable events (pings and
// detonations) delivered tick by tick. It consumes the core surface
// PropagateMissile, LaunchMissile, Planets.Get, Planets.Count, Lat, Lon
// and VEsc, plus NewMissileBatch, MissileBatch.Trajectory and
// Config.Describe, and Planets.Set through the PlanetSetter interface.
package game

import "math"

// linearCongruentialEngine draws the next uniform deviate in [0,1) from
// the Park-Miller minimal standard generator, updating state in place.
// Grounded on original_source's game.c linear_congruential_engine, which
// cites Park, Miller & Stockmeyer (1993).
func linearCongruentialEngine(state *uint32) float64 {
	if *state == 0 {
		*state = 1
	}
	const a = 48271
	const m = 2147483647
	*state = uint32((uint64(a) * uint64(*state)) % m)
	return float64(*state) / float64(m)
}

// greatCircleDistance returns the angular distance in radians between two
// points given as (lat, lon) pairs in radians.
func greatCircleDistance(lat1, lat2, lon1, lon2 float64) float64 {
	s1, c1 := math.Sincos(lat1)
	s2, c2 := math.Sincos(lat2)
	d := math.Cos(lon1 - lon2)
	return math.Acos(s1*s2 + c1*c2*d)
}

// PlanetSetter is the subset of *gravix2.Planets that RandInitPlanets
// needs; kept narrow so the sampler can be tested without constructing a
// full Planets instance.
type PlanetSetter interface {
	Count() int
	Set(i int, lat, lon float64) error
}

// RandInitPlanets samples n planet positions uniformly on the sphere
// (n = planets.Count()), rejecting and redrawing whenever a candidate
// falls within minDist of a planet already placed. seed is advanced by
// every draw, so consecutive calls without resetting it produce different
// universes. It returns the number of draws performed, which is at least
// planets.Count(). Grounded on original_source's game.c
// grvx_rnd_init_planets.
func RandInitPlanets(planets PlanetSetter, seed *uint32, minDist float64) int {
	n := planets.Count()
	lats := make([]float64, n)
	lons := make([]float64, n)

	draws := 0
	for i := 0; i < n; i++ {
		for {
			lat := math.Asin(2*linearCongruentialEngine(seed) - 1)
			lon := math.Pi * (2*linearCongruentialEngine(seed) - 1)
			draws++

			separated := true
			for j := 0; j < i && separated; j++ {
				if greatCircleDistance(lat, lats[j], lon, lons[j]) < minDist {
					separated = false
				}
			}
			if separated {
				lats[i] = lat
				lons[i] = lon
				_ = planets.Set(i, lat, lon)
				break
			}
		}
	}
	return draws
}
