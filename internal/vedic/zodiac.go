package vedic

import "math"

// Signs are the 12 rashi names in fixed zodiacal order.
var Signs = []string{
	"Aries",
	"Taurus",
	"Gemini",
	"Cancer",
	"Leo",
	"Virgo",
	"Libra",
	"Scorpio",
	"Sagittarius",
	"Capricorn",
	"Aquarius",
	"Pisces",
}

// Nakshatras are the 27 lunar mansion names in fixed order.
var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// NakshatraSegment is the width of one nakshatra in degrees (13°20′).
const NakshatraSegment = 360.0 / 27.0

// NormalizeDegrees reduces a longitude into [0, 360). True modulo:
// negative inputs wrap to the positive range. Tiny negatives would
// otherwise round the wrap to exactly 360, which is out of range.
func NormalizeDegrees(value float64) float64 {
	v := math.Mod(value, 360.0)
	if v < 0 {
		v += 360.0
	}
	if v >= 360.0 {
		v = 0
	}
	return v
}

// TropicalToSidereal converts a tropical longitude to sidereal by
// subtracting the ayanamsa.
func TropicalToSidereal(tropical, ayanamsa float64) float64 {
	return NormalizeDegrees(tropical - ayanamsa)
}

// SignFromLongitude returns the rashi sign for a longitude.
func SignFromLongitude(longitude float64) string {
	return Signs[int(NormalizeDegrees(longitude)/30.0)]
}

// SignIndex returns the position of a sign in the fixed order, or -1.
func SignIndex(sign string) int {
	for i, s := range Signs {
		if s == sign {
			return i
		}
	}
	return -1
}

// NakshatraIndex returns the position of a nakshatra name, or -1.
func NakshatraIndex(name string) int {
	for i, n := range Nakshatras {
		if n == name {
			return i
		}
	}
	return -1
}

// HouseFromLagna returns the whole-sign house number of a planet sign
// relative to the Lagna sign. The Lagna sign itself is house 1.
func HouseFromLagna(planetSign, lagnaSign string) int {
	p := SignIndex(planetSign)
	l := SignIndex(lagnaSign)
	return ((p-l)%12+12)%12 + 1
}

// NakshatraAndPada returns the nakshatra name and pada quarter (1-4)
// for a sidereal longitude. The pada is clamped at 4 to absorb float
// rounding at segment boundaries.
func NakshatraAndPada(longitude float64) (string, int) {
	lon := NormalizeDegrees(longitude)
	idx := int(lon / NakshatraSegment)
	within := math.Mod(lon, NakshatraSegment)
	pada := int(within/(NakshatraSegment/4)) + 1
	if pada > 4 {
		pada = 4
	}
	return Nakshatras[idx], pada
}
