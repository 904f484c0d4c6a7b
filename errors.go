package gravix2

import (
	"errors"
	"fmt"
)

// Caller-visible errors.
var (
	// ErrUnknownPlanet is returned when a planet index is out of range.
	ErrUnknownPlanet = errors.New("gravix2: unknown planet index")
	// ErrZeroDirection is returned by InitMissile when the launch
	// direction vector (dlat, dlon) vanishes.
	ErrZeroDirection = errors.New("gravix2: zero launch direction")
	// ErrTerminated is returned by PropagateMissile when called again on
	// a missile that already terminated prematurely.
	ErrTerminated = errors.New("gravix2: missile already terminated")
)

// debugAssert panics with a descriptive message if cond is false and
// strict is true: fatal in debug, a no-op in release, where "release"
// means the assertion is skipped rather than the invariant silently
// corrupted.
func debugAssert(strict, cond bool, format string, args ...interface{}) {
	if strict && !cond {
		panic(fmt.Errorf("gravix2: internal invariant violated: "+format, args...))
	}
}
