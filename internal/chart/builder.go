package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/rajveda/jyotish/internal/ephemeris"
	"github.com/rajveda/jyotish/internal/model"
	"github.com/rajveda/jyotish/internal/vedic"
)

// Builder composes the ephemeris source and coordinate utilities into
// full Rashi charts.
type Builder struct {
	source ephemeris.Source
}

// NewBuilder creates a chart builder over an ephemeris source.
func NewBuilder(source ephemeris.Source) *Builder {
	return &Builder{source: source}
}

// Build computes the chart for a birth record: UTC conversion, ayanamsa
// correction, approximate lagna, and per-planet sign, house, nakshatra,
// and pada.
func (b *Builder) Build(name string, birth model.BirthDetails) (*model.Chart, error) {
	utc, err := vedic.ToUTC(birth.DateOfBirth, birth.TimeOfBirth, birth.Timezone)
	if err != nil {
		return nil, fmt.Errorf("birth instant: %w", err)
	}
	ayanamsa := vedic.ApproximateLahiriAyanamsa(utc)

	tropical, err := b.source.PositionsAt(utc)
	if err != nil {
		return nil, fmt.Errorf("ephemeris positions: %w", err)
	}

	lagnaTropical := vedic.ApproximateLagnaLongitude(utc, birth.Longitude, birth.Latitude)
	lagnaSidereal := vedic.TropicalToSidereal(lagnaTropical, ayanamsa)
	lagnaSign := vedic.SignFromLongitude(lagnaSidereal)

	positions := make([]model.PlanetPosition, 0, len(ephemeris.Planets))
	moonSign, sunSign := "", ""
	for _, planet := range ephemeris.Planets {
		data := tropical[planet]
		sidereal := vedic.TropicalToSidereal(data.Longitude, ayanamsa)
		sign := vedic.SignFromLongitude(sidereal)
		nakshatra, pada := vedic.NakshatraAndPada(sidereal)
		positions = append(positions, model.PlanetPosition{
			PlanetName:        planet,
			SiderealLongitude: math.Round(sidereal*10000) / 10000,
			Sign:              sign,
			House:             vedic.HouseFromLagna(sign, lagnaSign),
			NakshatraName:     nakshatra,
			NakshatraPada:     pada,
			Speed:             data.Speed,
		})
		switch planet {
		case "Moon":
			moonSign = sign
		case "Sun":
			sunSign = sign
		}
	}

	return &model.Chart{
		ID:              "chart-" + strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		Name:            name,
		BirthDetails:    birth,
		LagnaSign:       lagnaSign,
		MoonSign:        moonSign,
		SunSign:         sunSign,
		PlanetPositions: positions,
	}, nil
}
