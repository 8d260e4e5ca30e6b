package ephemeris

import (
	"math"
	"time"

	"github.com/rajveda/jyotish/internal/vedic"
)

// meanElement is a linear mean-longitude model anchored at J2000.
type meanElement struct {
	epochLongitude float64 // mean tropical longitude at J2000, degrees
	dailyMotion    float64 // degrees per day
}

// Mean orbital elements. These give rough tropical longitudes suitable
// for offline sign-level work; they are not an ephemeris-grade model.
var meanElements = map[string]meanElement{
	"Sun":     {280.4665, 0.98564736},
	"Moon":    {218.3165, 13.17639648},
	"Mercury": {252.2509, 4.09233445},
	"Venus":   {181.9798, 1.60213034},
	"Mars":    {355.4330, 0.52403840},
	"Jupiter": {34.3515, 0.08308529},
	"Saturn":  {50.0774, 0.03344414},
	"Rahu":    {125.0445, -0.05295377}, // mean lunar node, retrograde
}

const j2000 = 2451545.0

// MeanSource is the deterministic fallback when no ephemeris file is
// available: linear mean motion from J2000 for every body, with Ketu
// fixed opposite Rahu.
type MeanSource struct{}

// NewMeanSource creates the mean-motion source.
func NewMeanSource() *MeanSource {
	return &MeanSource{}
}

// Name returns the source name.
func (s *MeanSource) Name() string {
	return "mean"
}

// PositionsAt computes mean tropical longitudes for the instant.
func (s *MeanSource) PositionsAt(utc time.Time) (map[string]Result, error) {
	days := vedic.JulianDay(utc) - j2000

	out := make(map[string]Result, len(Planets))
	for planet, el := range meanElements {
		lon := math.Mod(el.epochLongitude+el.dailyMotion*days, 360.0)
		if lon < 0 {
			lon += 360.0
		}
		out[planet] = Result{Longitude: lon, Speed: el.dailyMotion}
	}
	rahu := out["Rahu"]
	out["Ketu"] = Result{
		Longitude: math.Mod(rahu.Longitude+180.0, 360.0),
		Speed:     rahu.Speed,
	}

	if err := validate(s.Name(), out); err != nil {
		return nil, err
	}
	return out, nil
}
