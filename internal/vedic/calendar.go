package vedic

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidTimeZone signals an unrecognized IANA zone name.
	ErrInvalidTimeZone = errors.New("invalid time zone")

	// ErrInvalidDateTime signals a malformed date or time string.
	ErrInvalidDateTime = errors.New("invalid date/time")
)

// ToUTC converts a local civil date ("2006-01-02"), time ("15:04") and
// IANA zone name into a UTC instant.
func ToUTC(dateStr, timeStr, zoneName string) (time.Time, error) {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeZone, zoneName)
	}
	local, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
	if err != nil {
		local, err = time.ParseInLocation("2006-01-02 15:04:05", dateStr+" "+timeStr, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidDateTime, dateStr, timeStr)
		}
	}
	return local.UTC(), nil
}

// JulianDay computes the Julian day number for a UTC instant.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y := t.Year()
	m := int(t.Month())
	d := float64(t.Day()) +
		(float64(t.Hour())+float64(t.Minute())/60+float64(t.Second())/3600)/24
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(float64(y)+4716)) + math.Floor(30.6001*float64(m+1)) + d + b - 1524.5
}

// ApproximateLahiriAyanamsa returns the Lahiri ayanamsa in degrees for
// modern dates, as a linear model anchored near J2000.
func ApproximateLahiriAyanamsa(utc time.Time) float64 {
	const base = 23.8531 // around J2000
	years := float64(utc.Year()) + float64(utc.YearDay())/365.25 - 2000.0
	return base + years*0.013968
}

// ApproximateLagnaLongitude approximates the ascendant longitude from
// local sidereal time. Deterministic and intentionally simplified; it is
// not an astronomically rigorous ascendant.
func ApproximateLagnaLongitude(utc time.Time, geoLongitude, geoLatitude float64) float64 {
	jd := JulianDay(utc)
	t := (jd - 2451545.0) / 36525.0
	gmst := 280.46061837 + 360.98564736629*(jd-2451545.0) + 0.000387933*t*t
	lst := NormalizeDegrees(gmst + geoLongitude)
	correction := geoLatitude * 0.1
	return NormalizeDegrees(lst + correction)
}
