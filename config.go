package gravix2

import (
	"fmt"
	"math"
)

// PotentialKind selects the closed-form 2D potential or the truncated 3D
// series.
type PotentialKind string

// Supported potential kinds.
const (
	Pot2D PotentialKind = "2D"
	Pot3D PotentialKind = "3D"
)

// SchemeName selects a symmetric composition scheme.
type SchemeName string

// Supported composition schemes.
const (
	SchemeP2S1  SchemeName = "p2s1"
	SchemeP4S3  SchemeName = "p4s3"
	SchemeP4S5  SchemeName = "p4s5"
	SchemeP6S9  SchemeName = "p6s9"
	SchemeP8S15 SchemeName = "p8s15"
)

// Config bundles the compile-time constants consumed by the core. Apart
// from the exported StrictAssertions flag, a Config cannot be changed
// once built by NewConfig.
type Config struct {
	pot            Potential
	potType        PotentialKind
	nPot           int
	trajectorySize int
	intSteps       int
	minDist        float64
	scheme         SchemeName
	gamma          []float64

	// StrictAssertions enables panics on internal invariant violations.
	// Debug builds should set this to true; it is the Go analogue of the
	// reference implementation's assert()-in-debug / undefined-in-release
	// split.
	StrictAssertions bool
}

// ConfigReadout is the read-only snapshot returned by Config.Describe,
// mirroring the C ABI's struct Config.
type ConfigReadout struct {
	PotType          string
	NPot             int
	TrajectorySize   int
	IntSteps         int
	MinDist          float64
	CompositionScheme string
	NStages          int
}

// NewConfig validates and builds an immutable Config from the compile-time
// constants. NPot is only meaningful (and must be >=1) when potType is
// Pot3D; it is ignored for Pot2D.
func NewConfig(potType PotentialKind, nPot, trajectorySize, intSteps int, minDist float64, scheme SchemeName) (Config, error) {
	if trajectorySize < 1 {
		return Config{}, fmt.Errorf("gravix2: trajectory_size must be >= 1, got %d", trajectorySize)
	}
	if intSteps < 1 {
		return Config{}, fmt.Errorf("gravix2: int_steps must be >= 1, got %d", intSteps)
	}
	if minDist <= 0 {
		return Config{}, fmt.Errorf("gravix2: min_dist must be > 0, got %g", minDist)
	}

	var pot Potential
	switch potType {
	case Pot2D:
		pot = potential2D{}
	case Pot3D:
		if nPot < 1 {
			return Config{}, fmt.Errorf("gravix2: n_pot must be >= 1 for 3D potential, got %d", nPot)
		}
		pot = potential3D{n: nPot}
	default:
		return Config{}, fmt.Errorf("gravix2: unknown pot_type %q", potType)
	}

	gamma, ok := compositionSchemes[scheme]
	if !ok {
		return Config{}, fmt.Errorf("gravix2: unknown composition_scheme %q", scheme)
	}

	return Config{
		pot:            pot,
		potType:        potType,
		nPot:           nPot,
		trajectorySize: trajectorySize,
		intSteps:       intSteps,
		minDist:        minDist,
		scheme:         scheme,
		gamma:          gamma,
	}, nil
}

// cosRim returns cos(δ), the rim threshold used by the integration loop.
func (c Config) cosRim() float64 {
	return math.Cos(c.minDist)
}

// Describe returns the static configuration readout.
func (c Config) Describe() ConfigReadout {
	nPot := c.nPot
	if c.potType == Pot2D {
		nPot = -1
	}
	return ConfigReadout{
		PotType:           string(c.potType),
		NPot:              nPot,
		TrajectorySize:    c.trajectorySize,
		IntSteps:          c.intSteps,
		MinDist:           c.minDist,
		CompositionScheme: string(c.scheme),
		NStages:           len(c.gamma),
	}
}
