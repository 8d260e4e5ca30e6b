package kuta

import (
	"errors"
	"math"
	"testing"

	"github.com/rajveda/jyotish/internal/model"
	"github.com/rajveda/jyotish/internal/vedic"
)

func chartWithMoon(id, moonSign, nakshatra string) *model.Chart {
	return &model.Chart{
		ID:       id,
		Name:     id,
		MoonSign: moonSign,
		PlanetPositions: []model.PlanetPosition{
			{PlanetName: "Moon", Sign: moonSign, NakshatraName: nakshatra, NakshatraPada: 1},
		},
	}
}

func TestScore_MissingMoon(t *testing.T) {
	scorer := NewScorer()
	noMoon := &model.Chart{ID: "empty", MoonSign: "Aries"}
	withMoon := chartWithMoon("ok", "Aries", "Ashwini")

	if _, err := scorer.Score(noMoon, withMoon); !errors.Is(err, ErrMissingMoon) {
		t.Errorf("expected ErrMissingMoon for chart A, got %v", err)
	}
	if _, err := scorer.Score(withMoon, noMoon); !errors.Is(err, ErrMissingMoon) {
		t.Errorf("expected ErrMissingMoon for chart B, got %v", err)
	}
}

func TestScore_BoundsAndTotal(t *testing.T) {
	scorer := NewScorer()

	// Scan a spread of pairings; every sub-score must stay within its
	// factor maximum and the total must equal the rounded sum.
	for a := 0; a < 27; a += 5 {
		for b := 0; b < 27; b += 7 {
			chartA := chartWithMoon("a", vedic.Signs[a%12], vedic.Nakshatras[a])
			chartB := chartWithMoon("b", vedic.Signs[b%12], vedic.Nakshatras[b])

			result, err := scorer.Score(chartA, chartB)
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if len(result.PerKutaScores) != 8 {
				t.Fatalf("expected 8 kuta scores, got %d", len(result.PerKutaScores))
			}

			sum := 0.0
			for kuta, max := range Max {
				score, ok := result.PerKutaScores[kuta]
				if !ok {
					t.Fatalf("missing kuta %q in result", kuta)
				}
				if score < 0 || score > max {
					t.Errorf("%s score %v outside [0, %v]", kuta, score, max)
				}
				sum += score
			}
			want := math.Round(sum*100) / 100
			if result.TotalScore36 != want {
				t.Errorf("total %v != rounded sum %v", result.TotalScore36, want)
			}
			if result.TotalScore36 < 0 || result.TotalScore36 > 36 {
				t.Errorf("total %v outside [0, 36]", result.TotalScore36)
			}
		}
	}
}

func TestScore_AriesAshwiniVsCancerPushya(t *testing.T) {
	scorer := NewScorer()
	result, err := scorer.Score(
		chartWithMoon("a", "Aries", "Ashwini"),
		chartWithMoon("b", "Cancer", "Pushya"),
	)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	// Sign distance Aries->Cancer is 4, not in the forbidden set.
	if got := result.PerKutaScores["Bhakoot"]; got != 7 {
		t.Errorf("Bhakoot = %v, want 7", got)
	}
	// Nakshatra 0 is Adi, nakshatra 7 is Madhya: different nadi class.
	if got := result.PerKutaScores["Nadi"]; got != 8 {
		t.Errorf("Nadi = %v, want 8", got)
	}
	// The result identifies the two charts by their ids.
	if result.ProfileAID != "a" || result.ProfileBID != "b" {
		t.Errorf("result ids = %q/%q, want a/b", result.ProfileAID, result.ProfileBID)
	}
}

func TestScore_IdenticalMoonSignature(t *testing.T) {
	scorer := NewScorer()
	result, err := scorer.Score(
		chartWithMoon("a", "Taurus", "Rohini"),
		chartWithMoon("b", "Taurus", "Rohini"),
	)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	wantScores := map[string]float64{
		"Varna":        1,
		"Vashya":       2,
		"Graha Maitri": 5,
		"Gana":         6,
		"Nadi":         0, // identical nakshatra means identical nadi class
	}
	for kuta, want := range wantScores {
		if got := result.PerKutaScores[kuta]; got != want {
			t.Errorf("%s = %v, want %v", kuta, got, want)
		}
	}
	if result.TotalScore36 <= 0 {
		t.Errorf("total %v, want > 0", result.TotalScore36)
	}
	if result.TotalScore36 == 36 {
		t.Error("a perfectly matched Moon signature must not produce a perfect total")
	}
}

func TestGana_DevaManushyaPair(t *testing.T) {
	scorer := NewScorer()

	// Ashwini (0 mod 3 = Deva) against Bharani (1 mod 3 = Manushya).
	if got := scorer.gana(0, 1); got != 5 {
		t.Errorf("gana(Deva, Manushya) = %v, want 5", got)
	}
	if got := scorer.gana(1, 0); got != 5 {
		t.Errorf("gana(Manushya, Deva) = %v, want 5", got)
	}
	// Manushya against Rakshasa.
	if got := scorer.gana(1, 2); got != 1 {
		t.Errorf("gana(Manushya, Rakshasa) = %v, want 1", got)
	}
	// Deva against Rakshasa falls through to zero.
	if got := scorer.gana(0, 2); got != 0 {
		t.Errorf("gana(Deva, Rakshasa) = %v, want 0", got)
	}
}

func TestVarna_Asymmetric(t *testing.T) {
	scorer := NewScorer()

	// Gemini is Shudra (rank 1), Cancer is Brahmin (rank 4).
	if got := scorer.varna("Gemini", "Cancer"); got != 1 {
		t.Errorf("varna(Shudra, Brahmin) = %v, want 1", got)
	}
	if got := scorer.varna("Cancer", "Gemini"); got != 0 {
		t.Errorf("varna(Brahmin, Shudra) = %v, want 0", got)
	}
}

func TestTara_BothDirections(t *testing.T) {
	scorer := NewScorer()

	// Same nakshatra: d1 = d2 = 1, 1 mod 9 = 1 is favorable both ways.
	if got := scorer.tara(4, 4); got != 3 {
		t.Errorf("tara(same) = %v, want 3", got)
	}
	// Distances 3 and 26: 3 mod 9 = 3 is bad, 26 mod 9 = 8 is good.
	if got := scorer.tara(0, 2); got != 1.5 {
		t.Errorf("tara(0, 2) = %v, want 1.5", got)
	}
}

func TestBhakoot_ForbiddenDistances(t *testing.T) {
	scorer := NewScorer()

	// Aries -> Taurus is distance 2 (forbidden).
	if got := scorer.bhakoot("Aries", "Taurus"); got != 0 {
		t.Errorf("bhakoot distance 2 = %v, want 0", got)
	}
	// Aries -> Virgo is distance 6 (forbidden).
	if got := scorer.bhakoot("Aries", "Virgo"); got != 0 {
		t.Errorf("bhakoot distance 6 = %v, want 0", got)
	}
	// Aries -> Leo is distance 5 (allowed).
	if got := scorer.bhakoot("Aries", "Leo"); got != 7 {
		t.Errorf("bhakoot distance 5 = %v, want 7", got)
	}
}

func TestMaxTableSumsTo36(t *testing.T) {
	total := 0.0
	for _, max := range Max {
		total += max
	}
	if total != 36 {
		t.Errorf("kuta maxima sum to %v, want 36", total)
	}
}
