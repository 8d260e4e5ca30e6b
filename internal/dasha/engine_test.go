package dasha

import (
	"errors"
	"testing"
	"time"

	"github.com/rajveda/jyotish/internal/model"
)

var birth = time.Date(1990, 5, 15, 1, 0, 0, 0, time.UTC)

func TestGenerate_UnknownLord(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Generate("Pluto", birth, DefaultSpanYears)
	if !errors.Is(err, ErrUnknownLord) {
		t.Fatalf("expected ErrUnknownLord, got %v", err)
	}
}

func TestGenerate_StartsAtStartLord(t *testing.T) {
	engine := NewEngine()
	periods, err := engine.Generate("Ketu", birth, 1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	counts := map[model.DashaLevel]int{}
	for _, p := range periods {
		counts[p.Level]++
	}
	for _, level := range []model.DashaLevel{model.LevelMaha, model.LevelAntar, model.LevelPratyantar} {
		if counts[level] == 0 {
			t.Errorf("expected at least one %s period", level)
		}
	}

	if periods[0].Level != model.LevelMaha || periods[0].Lord != "Ketu" {
		t.Errorf("first period = %s %s, want maha Ketu", periods[0].Level, periods[0].Lord)
	}
	if !periods[0].Start.Equal(birth) {
		t.Errorf("first maha starts at %v, want %v", periods[0].Start, birth)
	}
}

func TestGenerate_MahaRotation(t *testing.T) {
	engine := NewEngine()
	periods, err := engine.Generate("Rahu", birth, DefaultSpanYears)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	var mahaLords []string
	for _, p := range periods {
		if p.Level == model.LevelMaha {
			mahaLords = append(mahaLords, p.Lord)
		}
	}

	// A full 120-year span contains exactly one rotation of the cycle.
	if len(mahaLords) != 9 {
		t.Fatalf("got %d maha periods for full span, want 9", len(mahaLords))
	}
	want := []string{"Rahu", "Jupiter", "Saturn", "Mercury", "Ketu", "Venus", "Sun", "Moon", "Mars"}
	for i, lord := range want {
		if mahaLords[i] != lord {
			t.Errorf("maha %d = %s, want %s", i, mahaLords[i], lord)
		}
	}
}

func TestGenerate_MahaDurationProportions(t *testing.T) {
	engine := NewEngine()
	periods, err := engine.Generate("Venus", birth, DefaultSpanYears)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	for _, p := range periods {
		if p.Level != model.LevelMaha {
			continue
		}
		wantDays := float64(Years[p.Lord]) * daysPerYear
		gotDays := p.End.Sub(p.Start).Hours() / 24
		if diff := gotDays - wantDays; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("maha %s duration %v days, want %v", p.Lord, gotDays, wantDays)
		}
	}
}

func TestGenerate_AntarChildrenCoverMaha(t *testing.T) {
	engine := NewEngine()
	periods, err := engine.Generate("Sun", birth, DefaultSpanYears)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	mahas := map[string]model.DashaPeriod{}
	for _, p := range periods {
		if p.Level == model.LevelMaha {
			mahas[p.ID] = p
		}
	}

	const tolerance = time.Second
	for id, maha := range mahas {
		var children []model.DashaPeriod
		for _, p := range periods {
			if p.Level == model.LevelAntar && p.HasParent(id) {
				children = append(children, p)
			}
		}
		if len(children) != 9 {
			t.Fatalf("maha %s has %d antar children, want 9", id, len(children))
		}

		// Contiguous chain from maha start to maha end.
		if d := children[0].Start.Sub(maha.Start); d > tolerance || d < -tolerance {
			t.Errorf("maha %s: first antar starts %v after maha start", id, d)
		}
		for i := 1; i < len(children); i++ {
			if !children[i].Start.Equal(children[i-1].End) {
				t.Errorf("maha %s: antar %d not contiguous with predecessor", id, i)
			}
		}
		if d := children[8].End.Sub(maha.End); d > tolerance || d < -tolerance {
			t.Errorf("maha %s: last antar ends %v away from maha end", id, d)
		}
	}
}

func TestGenerate_PratyantarChildrenCoverAntar(t *testing.T) {
	engine := NewEngine()
	periods, err := engine.Generate("Moon", birth, 1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// First antar of the first maha.
	var antar *model.DashaPeriod
	for i := range periods {
		if periods[i].Level == model.LevelAntar {
			antar = &periods[i]
			break
		}
	}
	if antar == nil {
		t.Fatal("no antar period generated")
	}

	var children []model.DashaPeriod
	for _, p := range periods {
		if p.Level == model.LevelPratyantar && p.HasParent(antar.ID) {
			children = append(children, p)
		}
	}
	if len(children) != 9 {
		t.Fatalf("antar has %d pratyantar children, want 9", len(children))
	}

	const tolerance = time.Second
	if d := children[0].Start.Sub(antar.Start); d > tolerance || d < -tolerance {
		t.Errorf("first pratyantar offset from antar start: %v", d)
	}
	if d := children[8].End.Sub(antar.End); d > tolerance || d < -tolerance {
		t.Errorf("last pratyantar offset from antar end: %v", d)
	}
}

func TestLocate_AncestryLinked(t *testing.T) {
	engine := NewEngine()
	periods, err := engine.Generate("Ketu", birth, DefaultSpanYears)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	for _, offset := range []time.Duration{
		24 * time.Hour,
		365 * 24 * time.Hour,
		20 * 365 * 24 * time.Hour,
		77 * 365 * 24 * time.Hour,
	} {
		when := birth.Add(offset)
		maha, antar, pratyantar := engine.Locate(periods, when)
		if maha == nil || antar == nil || pratyantar == nil {
			t.Fatalf("Locate(%v): missing level (maha=%v antar=%v pratyantar=%v)",
				when, maha, antar, pratyantar)
		}
		if !maha.Contains(when) || !antar.Contains(when) || !pratyantar.Contains(when) {
			t.Errorf("Locate(%v): returned period not containing instant", when)
		}
		if !antar.HasParent(maha.ID) {
			t.Errorf("antar %s does not link maha %s", antar.ID, maha.ID)
		}
		if !pratyantar.HasParent(maha.ID) || !pratyantar.HasParent(antar.ID) {
			t.Errorf("pratyantar %s does not link both ancestors", pratyantar.ID)
		}
	}
}

func TestLocate_OutsideSpan(t *testing.T) {
	engine := NewEngine()
	periods, err := engine.Generate("Ketu", birth, 1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// Well before birth: no level matches, and deeper levels stay empty.
	maha, antar, pratyantar := engine.Locate(periods, birth.Add(-time.Hour))
	if maha != nil || antar != nil || pratyantar != nil {
		t.Errorf("expected all levels nil before birth, got %v %v %v", maha, antar, pratyantar)
	}

	// Far beyond the generated window.
	maha, antar, pratyantar = engine.Locate(periods, birth.AddDate(200, 0, 0))
	if maha != nil || antar != nil || pratyantar != nil {
		t.Errorf("expected all levels nil past span, got %v %v %v", maha, antar, pratyantar)
	}
}

func TestGenerate_IdentityDeterministic(t *testing.T) {
	engine := NewEngine()
	a, err := engine.Generate("Saturn", birth, 5)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := engine.Generate("Saturn", birth, 5)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("regeneration changed period count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("period %d id changed across regeneration: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestStartLordForNakshatra(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "Ketu"},
		{1, "Venus"},
		{8, "Mercury"},
		{9, "Ketu"},
		{26, "Mercury"},
	}
	for _, c := range cases {
		if got := StartLordForNakshatra(c.index); got != c.want {
			t.Errorf("StartLordForNakshatra(%d) = %s, want %s", c.index, got, c.want)
		}
	}

	// Index mod 9 invariance across the full nakshatra range.
	for n := 0; n < 27; n++ {
		if StartLordForNakshatra(n) != StartLordForNakshatra(n%9) {
			t.Errorf("StartLordForNakshatra(%d) != StartLordForNakshatra(%d)", n, n%9)
		}
	}
}

func TestYearsSumTo120(t *testing.T) {
	total := 0
	for _, lord := range Order {
		total += Years[lord]
	}
	if total != 120 {
		t.Errorf("lord years sum to %d, want 120", total)
	}
}
