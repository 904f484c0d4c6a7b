package game

import (
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"

	"github.com/avitase/libgravix2"
)

// MissileLaunch is a scheduled launch request. V is the launch speed in
// the same absolute units gravix2.LaunchMissile itself takes (not
// pre-divided by the escape velocity, unlike original_source's game.c,
// whose missile->v / game->v0 division does not typecheck against
// api.h's own documented units for launch_missile's v parameter).
type MissileLaunch struct {
	TStart float64
	TPing  float64
	TEnd   float64
	V      float64
	Psi    float64
}

func (m MissileLaunch) validate(t float64) bool {
	return t <= m.TStart && m.TStart < m.TEnd && m.TStart < m.TPing && m.TPing <= m.TEnd
}

// Game bundles a universe of planets with a single missile launch slot
// and a tick-driven event scheduler. Time is represented by integer
// ticks, advanced by ObserveOrTick; observable events are scheduled at
// fractional ticks. Grounded on original_source's game.c.
type Game struct {
	cfg      gravix2.Config
	tick     uint32
	planets  *gravix2.Planets
	missiles *gravix2.MissileBatch
	v0       float64
	head     *observationNode
	log      kitlog.Logger
}

// NewGame creates a new game over the given planets.
func NewGame(cfg gravix2.Config, planets *gravix2.Planets) *Game {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "component", "gravix2/game")

	return &Game{
		cfg:      cfg,
		planets:  planets,
		missiles: gravix2.NewMissileBatch(cfg, 1),
		v0:       cfg.VEsc(),
		log:      klog,
	}
}

func closestPlanet(planets *gravix2.Planets, lat, lon float64) int {
	minDist := math.Inf(1)
	planet := 0
	for i := 0; i < planets.Count(); i++ {
		pLat, pLon, err := planets.Get(i)
		if err != nil {
			continue
		}
		if d := greatCircleDistance(lat, pLat, lon, pLon); d < minDist {
			minDist = d
			planet = i
		}
	}
	return planet
}

// position reads the (lat, lon) of trajectory sample floor(tRel*K) for a
// fractional tick offset tRel, clamped to the range [0, K-1].
func position(trj *gravix2.Trajectory, tRel float64) (lat, lon float64) {
	n := len(trj.Samples)
	idx := int(tRel * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	sample := trj.Samples[idx]
	return gravix2.Lat(sample.Q.Z), gravix2.Lon(sample.Q.X, sample.Q.Y)
}

// RequestLaunch schedules a missile launch at planetID. The engine's step
// size is derived from dt so that one tick equals one call's worth of
// simulated time, independent of the configured trajectory size and
// integration-step count. Grounded on original_source's
// grvx_request_launch.
func (g *Game) RequestLaunch(planetID int, launch MissileLaunch, dt float64) error {
	t := float64(g.tick)
	if !launch.validate(t) {
		return fmt.Errorf("gravix2/game: invalid launch window starting at tick %g", t)
	}

	trj := g.missiles.Trajectory(0)
	if err := g.cfg.LaunchMissile(trj, g.planets, planetID, launch.V, launch.Psi); err != nil {
		return err
	}

	readout := g.cfg.Describe()
	trajSize := float64(readout.TrajectorySize)
	h := dt / float64(readout.IntSteps) / trajSize

	g.log.Log("event", "launch", "planet", planetID, "tick", g.tick)

	premature := false
	for !premature && t < launch.TEnd {
		n, prem, err := g.cfg.PropagateMissile(trj, g.planets, h)
		if err != nil {
			return err
		}
		premature = prem
		frac := float64(n) / trajSize

		tPing, tDetonation := -1.0, -1.0
		if premature {
			if diff := launch.TPing - t; diff >= 0 && diff < frac {
				tPing = diff
			}
			if diff := launch.TEnd - t; frac <= diff {
				tDetonation = frac
			}
		} else if diff := launch.TPing - t; diff >= 0 && diff < 1 {
			tPing = diff
		}

		if tPing >= 0 {
			lat, lon := position(trj, tPing)
			obs := Observation{PlanetID: g.planets.Count(), T: launch.TPing, Lat: lat, Lon: lon}
			g.head = insertObservation(g.head, obs)
			g.log.Log("event", "ping", "t", obs.T)
		}

		if tDetonation >= 0 {
			lat, lon := position(trj, tDetonation)
			planet := closestPlanet(g.planets, lat, lon)
			pLat, pLon, _ := g.planets.Get(planet)
			obs := Observation{PlanetID: planet, T: t + tDetonation, Lat: pLat, Lon: pLon}
			g.head = insertObservation(g.head, obs)
			g.log.Log("event", "detonation", "planet", planet, "t", obs.T)
		}

		t++
	}

	return nil
}

// ObserveOrTick pops the earliest-scheduled observation if one is due at
// or before the current tick, otherwise it advances the tick by one and
// returns no observation.
func (g *Game) ObserveOrTick() (*Observation, uint32) {
	if g.head == nil || g.head.obs.T > float64(g.tick) {
		g.tick++
		return nil, g.tick
	}
	obs, rest := popObservation(g.head)
	g.head = rest
	return obs, g.tick
}
