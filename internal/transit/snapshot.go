package transit

import (
	"time"

	"github.com/rajveda/jyotish/internal/model"
	"github.com/rajveda/jyotish/internal/vedic"
)

// Position is a transiting planet mapped against a natal chart.
type Position struct {
	PlanetName        string  `json:"planet_name"`
	SiderealLongitude float64 `json:"sidereal_longitude"`
	Sign              string  `json:"sign"`
	HouseFromLagna    int     `json:"house_from_lagna"`
	HouseFromMoon     int     `json:"house_from_moon"`
}

// Snapshot is the transit picture for one date.
type Snapshot struct {
	Date       string     `json:"date"` // YYYY-MM-DD
	Positions  []Position `json:"positions"`
	Highlights []string   `json:"highlights"`
}

// Compute maps sidereal transit longitudes onto the natal chart's Lagna
// and Moon reference frames and derives the classical highlights:
// Saturn in the Sade Sati zone (houses 12/1/2 from Moon) and Jupiter
// activating trines from Lagna (houses 1/5/9).
func Compute(chart *model.Chart, siderealLongitudes map[string]float64, date time.Time) *Snapshot {
	snapshot := &Snapshot{
		Date:       date.UTC().Format("2006-01-02"),
		Positions:  make([]Position, 0, len(siderealLongitudes)),
		Highlights: []string{},
	}

	for _, planet := range planetOrder(siderealLongitudes) {
		lon := siderealLongitudes[planet]
		sign := vedic.SignFromLongitude(lon)
		houseLagna := vedic.HouseFromLagna(sign, chart.LagnaSign)
		houseMoon := vedic.HouseFromLagna(sign, chart.MoonSign)
		snapshot.Positions = append(snapshot.Positions, Position{
			PlanetName:        planet,
			SiderealLongitude: lon,
			Sign:              sign,
			HouseFromLagna:    houseLagna,
			HouseFromMoon:     houseMoon,
		})

		if planet == "Saturn" && (houseMoon == 12 || houseMoon == 1 || houseMoon == 2) {
			snapshot.Highlights = append(snapshot.Highlights,
				"Saturn is in Sade Sati zone from natal Moon (12/1/2 houses).")
		}
		if planet == "Jupiter" && (houseLagna == 1 || houseLagna == 5 || houseLagna == 9) {
			snapshot.Highlights = append(snapshot.Highlights,
				"Jupiter transit activates trinal houses from Lagna (1/5/9).")
		}
	}
	return snapshot
}

// planetOrder returns the known cycle order first, then any extras, so
// snapshots are stable regardless of map iteration order.
func planetOrder(longitudes map[string]float64) []string {
	known := []string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}
	order := make([]string, 0, len(longitudes))
	seen := make(map[string]bool, len(longitudes))
	for _, p := range known {
		if _, ok := longitudes[p]; ok {
			order = append(order, p)
			seen[p] = true
		}
	}
	for p := range longitudes {
		if !seen[p] {
			order = append(order, p)
		}
	}
	return order
}
