package game

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the runtime knobs of the scheduler layer, kept separate
// from gravix2.Config (the physics core's own compile-time constants) the
// same way the reference implementation keeps game.h's tunables apart
// from config.h's.
type Settings struct {
	// TickSize is the simulated time, in the same units as
	// MissileLaunch.TStart/TPing/TEnd, that elapses per ObserveOrTick
	// tick when no observation is due.
	TickSize float64

	// LaunchBudget caps the number of concurrent in-flight launches a
	// caller may request; the supplied Game only ever tracks one, so
	// this is advisory metadata for callers managing several Games.
	LaunchBudget int

	// MinPlanetSep is the minimum great-circle separation, in radians,
	// enforced by RandInitPlanets.
	MinPlanetSep float64
}

// LoadSettings reads Settings from confPath (TOML, YAML, JSON, ... per
// viper's supported formats), falling back to the GRAVIX2_GAME_CONFIG
// environment variable when confPath is empty.
func LoadSettings(confPath string) (Settings, error) {
	v := viper.New()
	v.SetDefault("ticksize", 1.0)
	v.SetDefault("launchbudget", 1)
	v.SetDefault("minplanetsep", 0.1)
	v.SetEnvPrefix("GRAVIX2_GAME")
	v.AutomaticEnv()

	if confPath == "" {
		confPath = v.GetString("config")
	}
	if confPath != "" {
		v.SetConfigFile(confPath)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("gravix2/game: reading config %q: %w", confPath, err)
		}
	}

	settings := Settings{
		TickSize:     v.GetFloat64("ticksize"),
		LaunchBudget: v.GetInt("launchbudget"),
		MinPlanetSep: v.GetFloat64("minplanetsep"),
	}

	if settings.TickSize <= 0 {
		return Settings{}, fmt.Errorf("gravix2/game: ticksize must be > 0, got %g", settings.TickSize)
	}
	if settings.MinPlanetSep <= 0 {
		return Settings{}, fmt.Errorf("gravix2/game: minplanetsep must be > 0, got %g", settings.MinPlanetSep)
	}

	return settings, nil
}
