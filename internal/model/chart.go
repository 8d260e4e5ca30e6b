package model

// BirthDetails carries the birth input required for chart construction.
type BirthDetails struct {
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD, local civil date
	TimeOfBirth string  `json:"time_of_birth"` // HH:MM, local civil time
	Timezone    string  `json:"timezone"`      // IANA zone name (e.g., "Asia/Kolkata")
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Gender      string  `json:"gender,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// PlanetPosition is a planet placement in the sidereal framework.
type PlanetPosition struct {
	PlanetName        string  `json:"planet_name"`
	SiderealLongitude float64 `json:"sidereal_longitude"` // [0, 360)
	Sign              string  `json:"sign"`
	House             int     `json:"house"` // whole-sign house from Lagna, 1-12
	NakshatraName     string  `json:"nakshatra_name"`
	NakshatraPada     int     `json:"nakshatra_pada"` // 1-4
	Speed             float64 `json:"speed,omitempty"`
}

// Chart is the primary Rashi chart.
type Chart struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	BirthDetails    BirthDetails     `json:"birth_details"`
	LagnaSign       string           `json:"lagna_sign"`
	MoonSign        string           `json:"moon_sign"`
	SunSign         string           `json:"sun_sign"`
	PlanetPositions []PlanetPosition `json:"planet_positions"`
}

// Moon returns the Moon placement, if the chart has one.
func (c *Chart) Moon() (PlanetPosition, bool) {
	for _, p := range c.PlanetPositions {
		if p.PlanetName == "Moon" {
			return p, true
		}
	}
	return PlanetPosition{}, false
}

// Profile is a stored user profile with its computed chart.
type Profile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BirthDetails BirthDetails `json:"birth_details"`
	Chart        *Chart       `json:"chart,omitempty"`
}
