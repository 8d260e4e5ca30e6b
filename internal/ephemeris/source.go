package ephemeris

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Planets are the nine bodies every source must report.
var Planets = []string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

// Result is the tropical longitude + optional speed for one planet.
type Result struct {
	Longitude float64 // tropical degrees, [0, 360)
	Speed     float64 // degrees/day, 0 when unknown
}

// ErrEmptySource signals a source with no usable positions.
var ErrEmptySource = errors.New("ephemeris source is empty")

// Source supplies tropical planetary positions for an instant. The
// sidereal correction (ayanamsa) is applied by the consumer, not here.
type Source interface {
	// Name identifies the concrete source.
	Name() string

	// PositionsAt returns a position for every planet in Planets.
	// A missing planet is a hard failure, never a partial result.
	PositionsAt(utc time.Time) (map[string]Result, error)
}

// New selects a source by capability probing: the CSV file source when
// the file exists and is readable, otherwise the deterministic
// mean-motion source. The result is wrapped in a memoizing cache.
func New(csvPath string, cacheTTL time.Duration) Source {
	var src Source = NewMeanSource()
	if csvPath != "" {
		if _, err := os.Stat(csvPath); err == nil {
			src = NewFileSource(csvPath)
		}
	}
	return NewCachedSource(src, cacheTTL)
}

// validate checks that a position map covers every planet.
func validate(name string, out map[string]Result) error {
	for _, planet := range Planets {
		if _, ok := out[planet]; !ok {
			return fmt.Errorf("source %s: missing planet %q", name, planet)
		}
	}
	return nil
}
