package chart

import (
	"errors"
	"testing"

	"github.com/rajveda/jyotish/internal/ephemeris"
	"github.com/rajveda/jyotish/internal/model"
	"github.com/rajveda/jyotish/internal/vedic"
)

var birth = model.BirthDetails{
	DateOfBirth: "1990-05-15",
	TimeOfBirth: "06:30",
	Timezone:    "Asia/Kolkata",
	Latitude:    12.97,
	Longitude:   77.59,
}

func TestBuild_CompleteChart(t *testing.T) {
	b := NewBuilder(ephemeris.NewMeanSource())

	chart, err := b.Build("Asha Rao", birth)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if chart.ID != "chart-asha-rao" {
		t.Errorf("chart id = %q, want chart-asha-rao", chart.ID)
	}
	if len(chart.PlanetPositions) != len(ephemeris.Planets) {
		t.Fatalf("got %d placements, want %d", len(chart.PlanetPositions), len(ephemeris.Planets))
	}

	for _, p := range chart.PlanetPositions {
		if p.SiderealLongitude < 0 || p.SiderealLongitude >= 360 {
			t.Errorf("%s longitude %v outside [0, 360)", p.PlanetName, p.SiderealLongitude)
		}
		if vedic.SignIndex(p.Sign) < 0 {
			t.Errorf("%s has unknown sign %q", p.PlanetName, p.Sign)
		}
		if p.House < 1 || p.House > 12 {
			t.Errorf("%s house %d outside 1-12", p.PlanetName, p.House)
		}
		if vedic.NakshatraIndex(p.NakshatraName) < 0 {
			t.Errorf("%s has unknown nakshatra %q", p.PlanetName, p.NakshatraName)
		}
		if p.NakshatraPada < 1 || p.NakshatraPada > 4 {
			t.Errorf("%s pada %d outside 1-4", p.PlanetName, p.NakshatraPada)
		}
	}

	moon, ok := chart.Moon()
	if !ok {
		t.Fatal("chart has no Moon placement")
	}
	if chart.MoonSign != moon.Sign {
		t.Errorf("MoonSign %q != Moon placement sign %q", chart.MoonSign, moon.Sign)
	}
	if vedic.SignIndex(chart.LagnaSign) < 0 {
		t.Errorf("unknown lagna sign %q", chart.LagnaSign)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder(ephemeris.NewMeanSource())

	a, err := b.Build("Asha", birth)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	c, err := b.Build("Asha", birth)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if a.LagnaSign != c.LagnaSign || a.MoonSign != c.MoonSign {
		t.Error("chart building is not deterministic")
	}
	for i := range a.PlanetPositions {
		if a.PlanetPositions[i] != c.PlanetPositions[i] {
			t.Errorf("placement %d differs across builds", i)
		}
	}
}

func TestBuild_InvalidBirthInput(t *testing.T) {
	b := NewBuilder(ephemeris.NewMeanSource())

	bad := birth
	bad.Timezone = "Nowhere/Nothing"
	if _, err := b.Build("Asha", bad); !errors.Is(err, vedic.ErrInvalidTimeZone) {
		t.Errorf("expected ErrInvalidTimeZone, got %v", err)
	}

	bad = birth
	bad.DateOfBirth = "15/05/1990"
	if _, err := b.Build("Asha", bad); !errors.Is(err, vedic.ErrInvalidDateTime) {
		t.Errorf("expected ErrInvalidDateTime, got %v", err)
	}
}
